// Package filesystem scans the shared folder for the remote client.
//
// Operations:
//   - Walk: recursive scan, RelativePath -> isBinary for every file
//   - List: one level, RelativePath -> {isDirectory}
//   - Filter: narrow a listing with a doublestar glob
//
// All operations:
//   - Key results by shared-relative, forward-slash paths
//   - Never report symlinks, and never follow them
//   - Return filesystem errors unmodified
//   - Run synchronously with a single walk worker
//
// Example Usage:
//
//	listing, err := filesystem.Walk(dir, nil, sharedFolder)
//	entries, err := filesystem.List(dir, sharedFolder)
package filesystem
