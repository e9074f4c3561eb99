package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/drodenkirchen/rio/pkg/component"
	"github.com/drodenkirchen/rio/pkg/layouter"
	"github.com/drodenkirchen/rio/pkg/scene"
	"github.com/drodenkirchen/rio/pkg/source"
)

// sourceOpts holds the flags selecting where the client report comes from.
// The component tree always comes from the scene file; the report comes
// from a live client (--url), a snapshot file (--snapshot), or the report
// embedded in the scene itself.
type sourceOpts struct {
	url          string        // fetch the report from a running client
	snapshotPath string        // load the report from a snapshot JSON file
	record       bool          // record the fetched report into the store
	replay       bool          // serve a previously recorded report if present
	retries      int           // HTTP fetch attempts
	retryDelay   time.Duration // initial backoff between attempts
}

// addSourceFlags registers the report source flags on cmd.
func addSourceFlags(cmd *cobra.Command, opts *sourceOpts) {
	cmd.Flags().StringVar(&opts.url, "url", "", "base URL of a running client to fetch the report from")
	cmd.Flags().StringVar(&opts.snapshotPath, "snapshot", "", "snapshot JSON file to load the report from")
	cmd.Flags().BoolVar(&opts.record, "record", false, "record the fetched report for later replay")
	cmd.Flags().BoolVar(&opts.replay, "replay", false, "replay a previously recorded report if one exists")
	cmd.Flags().IntVar(&opts.retries, "retries", 3, "fetch attempts against a live client")
	cmd.Flags().DurationVar(&opts.retryDelay, "retry-delay", 200*time.Millisecond, "initial backoff between fetch attempts")
}

// resolveSource builds the report source for a scene according to opts.
func resolveSource(sc *scene.Scene, opts *sourceOpts) (layouter.Source, error) {
	var src layouter.Source
	var key string

	switch {
	case opts.url != "":
		httpSrc, err := source.NewHTTP(opts.url, source.WithRetry(opts.retries, opts.retryDelay))
		if err != nil {
			return nil, err
		}
		src, key = httpSrc, "url:"+opts.url
	case opts.snapshotPath != "":
		src, key = source.NewFile(opts.snapshotPath), "file:"+opts.snapshotPath
	case sc.HasReport():
		snap, err := sc.Snapshot()
		if err != nil {
			return nil, err
		}
		src, key = source.NewStatic(snap), "scene:"+sc.Name
	default:
		return nil, fmt.Errorf("scene %q embeds no report; pass --url or --snapshot", sc.Name)
	}

	if opts.record || opts.replay {
		store, err := newStore()
		if err != nil {
			return nil, err
		}
		src = source.NewRecorded(src, store, key, opts.replay)
	}
	return src, nil
}

// loadAndCompute loads the scene at path, resolves the report source, and
// runs the full layout computation. This is the shared front half of every
// command operating on a finished layout.
func loadAndCompute(ctx context.Context, path string, opts *sourceOpts) (*layouter.Layouter, *scene.Scene, error) {
	sc, err := scene.Load(path)
	if err != nil {
		return nil, nil, err
	}

	root, err := sc.Build()
	if err != nil {
		return nil, nil, err
	}

	src, err := resolveSource(sc, opts)
	if err != nil {
		return nil, nil, err
	}

	ly, err := layouter.New(ctx, root, src)
	if err != nil {
		return nil, nil, err
	}
	return ly, sc, nil
}

// loadTree loads just the component tree of the scene at path. Used by
// commands that only need structure, not a finished computation.
func loadTree(path string) (component.Component, *scene.Scene, error) {
	sc, err := scene.Load(path)
	if err != nil {
		return nil, nil, err
	}
	root, err := sc.Build()
	if err != nil {
		return nil, nil, err
	}
	return root, sc, nil
}
