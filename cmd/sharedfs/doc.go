// Package main is the sharedfs command, a thin shell over the shared folder
// path mapping and scanning core.
//
// Usage:
//
//	sharedfs -root ~/project walk            # RelativePath -> isBinary
//	sharedfs -root ~/project list sub        # RelativePath -> {isDirectory}
//	sharedfs -root ~/project abs sub/b.bin   # native absolute path
//	sharedfs -root ~/project rel ~/project/a # shared-relative path
//	sharedfs domain https://remix.ethereum.org
//
// Flags override SHAREDFS_* environment variables. Listings go to stdout,
// logs to stderr.
package main
