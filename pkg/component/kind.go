package component

import "fmt"

// Kind tags a component with the layout behavior it gets. The set is
// closed: space allocation dispatches over it with a default arm, so an
// unknown kind is still laid out (by trusting client-measured values), it
// just gets no specialized treatment.
type Kind int

const (
	// KindCustom is a user-defined composite component. It contributes its
	// build result as its single tree child and is laid out with the
	// default strategy.
	KindCustom Kind = iota

	// KindRow and KindColumn are linear containers sequencing children
	// along the horizontal resp. vertical axis.
	KindRow
	KindColumn

	// KindOverlay layers its content over the rest of the UI. It claims no
	// space itself; its content always receives the full window.
	KindOverlay

	// Full-size single containers: they hand their allocated space to
	// their content unchanged.
	KindRoot
	KindButton
	KindCard
	KindContainer
	KindCustomListItem
	KindKeyEventListener
	KindLink
	KindMouseEventListener
	KindPageView
	KindRectangle
	KindSlideshow
	KindStack
	KindSwitcher

	// Leaf components measured on the client: their intrinsic sizing
	// (text metrics, image aspect, ...) is not reimplemented server-side.
	KindText
	KindIcon
	KindImage
	KindSlider
	KindSwitch
	KindProgressCircle
	KindScrollContainer
)

var kindNames = map[Kind]string{
	KindCustom:             "Custom",
	KindRow:                "Row",
	KindColumn:             "Column",
	KindOverlay:            "Overlay",
	KindRoot:               "Root",
	KindButton:             "Button",
	KindCard:               "Card",
	KindContainer:          "Container",
	KindCustomListItem:     "CustomListItem",
	KindKeyEventListener:   "KeyEventListener",
	KindLink:               "Link",
	KindMouseEventListener: "MouseEventListener",
	KindPageView:           "PageView",
	KindRectangle:          "Rectangle",
	KindSlideshow:          "Slideshow",
	KindStack:              "Stack",
	KindSwitcher:           "Switcher",
	KindText:               "Text",
	KindIcon:               "Icon",
	KindImage:              "Image",
	KindSlider:             "Slider",
	KindSwitch:             "Switch",
	KindProgressCircle:     "ProgressCircle",
	KindScrollContainer:    "ScrollContainer",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = k
	}
	return m
}()

// String returns the canonical kind name (e.g. "Row").
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind resolves a kind by its canonical name.
func ParseKind(name string) (Kind, error) {
	k, ok := kindsByName[name]
	if !ok {
		return 0, fmt.Errorf("unknown component kind %q", name)
	}
	return k, nil
}

// Kinds returns all known kinds. The order is stable.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kindNames))
	for k := KindCustom; k <= KindScrollContainer; k++ {
		out = append(out, k)
	}
	return out
}
