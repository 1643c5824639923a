package file

// Remove deletes the underlying filesystem entry: a file, an empty
// directory, or a symbolic link (the link itself, never its target).
// Non-empty directories are never deleted implicitly.
//
// Fails with CodeRemoveFailed if the entry does not exist or the OS refuses
// the deletion, leaving the entry and any contents intact.
func (f *File) Remove() error {
	if err := f.fsys.Remove(f.loc()); err != nil {
		return wrapPath(err, CodeRemoveFailed, "remove failed", f.path)
	}
	return nil
}
