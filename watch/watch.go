// Package watch rebuilds a patch whenever the reference blob it's taken
// against changes on disk. It exists for build pipelines that want to
// keep a delta patch in sync with a golden image without re-running the
// encoder by hand after every edit.
package watch

import (
	"log"
	"os"
	"time"

	"github.com/radovskyb/watcher"
	"github.com/zissis-pap/zipper"
	"github.com/zissis-pap/zipper/zerr"
)

// fingerprintWindow is the smallest rolling-hash window handleChange
// passes to Fingerprint when deciding whether a reference file's content
// actually changed between events. Longer files are fingerprinted with a
// window as long as the file, since Fingerprint only reflects the last
// window-size bytes it is fed.
const fingerprintWindow = 256

// Result is delivered to a Watcher's sink each time the reference file
// changes and a patch is (or fails to be) regenerated. Skipped is set
// when the event fired but the fast signature found no actual content
// change, so Patch/Err are both zero.
type Result struct {
	Patch   []byte
	Err     error
	Skipped bool
}

// Watcher regenerates a patch against a fixed target blob every time a
// reference file on disk is created, written, renamed, or removed.
type Watcher struct {
	referencePath string
	target        []byte
	blockSize     int

	w       *watcher.Watcher
	lastSig Signature
	seeded  bool
}

// New builds a Watcher over referencePath. target and blockSize are the
// Encode arguments replayed against the reference's current contents
// every time a change fires.
func New(referencePath string, target []byte, blockSize int) *Watcher {
	return &Watcher{
		referencePath: referencePath,
		target:        target,
		blockSize:     blockSize,
		w:             watcher.New(),
	}
}

// Watch starts the filesystem watch and blocks, sending a Result to sink
// on every relevant event. The first event seeds the fingerprint and
// also builds and sends a patch. It returns if the
// underlying watcher is closed or fails to start.
func (w *Watcher) Watch(sink chan<- Result, pollInterval time.Duration) error {
	w.w.SetMaxEvents(1)
	w.w.FilterOps(
		watcher.Create,
		watcher.Remove,
		watcher.Rename,
		watcher.Write,
	)

	if err := w.w.Add(w.referencePath); err != nil {
		return zerr.Wrap(zerr.IoError, err, "watch: adding reference file")
	}

	go func() {
		for {
			select {
			case event := <-w.w.Event:
				log.Printf("watch: %v", event)
				sink <- w.handleChange()
			case err := <-w.w.Error:
				sink <- Result{Err: zerr.Wrap(zerr.IoError, err, "watch: filesystem event error")}
			case <-w.w.Closed:
				return
			}
		}
	}()

	return w.w.Start(pollInterval)
}

// Close stops the underlying filesystem watch.
func (w *Watcher) Close() {
	w.w.Close()
}

// handleChange re-reads the reference file, skips regeneration if its
// fast signature is unchanged since the last build, and otherwise runs
// Encode against the configured target.
func (w *Watcher) handleChange() Result {
	reference, err := os.ReadFile(w.referencePath)
	if err != nil {
		return Result{Err: zerr.Wrap(zerr.IoError, err, "watch: reading reference file")}
	}

	window := fingerprintWindow
	if len(reference) > window {
		window = len(reference)
	}
	sig := Fingerprint(reference, window)
	if w.seeded && sig == w.lastSig {
		return Result{Skipped: true}
	}
	w.lastSig = sig
	w.seeded = true

	patch, err := zipper.Encode(reference, w.target, w.blockSize)
	if err != nil {
		return Result{Err: err}
	}
	return Result{Patch: patch}
}
