// SPDX-License-Identifier: EPL-2.0

// Package catalog is the boundary between the player and whatever stores the
// compressed tracks.
//
// The player only needs a track count and a read-only byte window per track.
// MemArchive keeps tracks in memory, DirArchive maps the files of a directory
// to track indices:
//
//	arc, err := catalog.OpenDir("music", "8ad")
//	if err != nil {
//	    return err
//	}
//	view, err := arc.Track(0)
package catalog
