// Package fsutil provides filesystem utilities that report every failure as
// a typed error from the fileio errors package.
//
// The operations are bound to a core.FS through a Tools value:
//
//	tools := fsutil.New(billy.NewLocal(), fsutil.WithLogger(logger))
//	if err := tools.Remove("/tmp/build", fsutil.FollowSymlinks()); err != nil {
//	    return err
//	}
//
// The package-level functions use the local filesystem.
//
// Tree operations (Remove, Duplicate) are not atomic. A failure part way
// through leaves a partially modified tree and the error names the path that
// failed.
package fsutil
