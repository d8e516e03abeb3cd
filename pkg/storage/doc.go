// Package storage owns the per-user download directory.
//
// Files are streamed to a temporary sibling and renamed into place once the
// copy completes, so an interrupted download never leaves a file under its
// final name. Saving the same name twice replaces the first file.
//
// Usage:
//
//	manager, err := storage.NewManager(filepath.Join(base, username))
//	if err != nil {
//	    return err
//	}
//
//	n, err := manager.SaveStream(resp.Body, "image_000_00.jpg")
package storage
