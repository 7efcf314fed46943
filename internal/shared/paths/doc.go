// Package paths maps between the remote client's path form and native paths.
//
// The remote client addresses every entry by a Unix-style path relative to a
// shared folder. The local filesystem needs absolute, OS-native paths. This
// package converts between the two without touching the disk.
//
// # Path Forms
//
//	RelativePath:  "sub/b.bin"              (forward slashes, no leading slash)
//	AbsolutePath:  "/home/user/project/sub/b.bin"
//	               "C:\Users\me\project\sub\b.bin"
//
// # Usage
//
//	import "github.com/GriffinCanCode/sharedfs/internal/shared/paths"
//
//	abs := paths.ToAbsolute("sub/b.bin", sharedFolder)
//	rel := paths.ToRelative(abs, sharedFolder) // "sub/b.bin"
//
// The shared folder is always passed explicitly. Nothing here keeps a global
// root.
package paths
