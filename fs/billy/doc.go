// Package billy provides go-billy-backed implementations of core.FS.
//
// Two providers are available:
//
//	local := billy.NewLocal()   // osfs rooted at "/"
//	mem := billy.NewMemory()    // memfs, initially empty
//
// Local names may be relative; they resolve against the process working
// directory, the same way the os package resolves them. Handles opened on
// the local provider carry an OS descriptor and support advisory locking
// through flock(2). Memory handles have no descriptor, so Lock returns
// core.ErrUnsupported.
//
// The underlying billy.Filesystem is available through Unwrap for callers
// that need to hand it to go-billy consumers.
//
// # Thread Safety
//
// Providers are safe for concurrent use by multiple goroutines. File handles
// are not.
package billy
