package vfs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultview/backend/internal/shared/types"
)

// TestNewSeedsRoot tests that a fresh store holds exactly the root folder
func TestNewSeedsRoot(t *testing.T) {
	s := New()

	entry, ok := s.Get(s.RootID())
	require.True(t, ok)
	assert.Equal(t, types.KindFolder, entry.Kind)
	assert.Equal(t, RootName, entry.Folder.Name)
	assert.True(t, entry.Folder.IsRoot())

	stats := s.Stats()
	assert.Equal(t, 1, stats.TotalFolders)
	assert.Equal(t, 0, stats.TotalFiles)
}

// TestCreateFolder tests folder creation under an existing parent
func TestCreateFolder(t *testing.T) {
	s := New()

	folder, err := s.CreateFolder(s.RootID(), "  Documents  ")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(folder.ID, "fld_"))
	assert.Equal(t, "Documents", folder.Name)
	assert.Equal(t, s.RootID(), folder.ParentID)
	assert.False(t, folder.CreatedAt.IsZero())

	count, err := s.ChildCount(s.RootID())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

// TestCreateFolderRejectsBlankName tests that blank names never persist
func TestCreateFolderRejectsBlankName(t *testing.T) {
	s := New()

	_, err := s.CreateFolder(s.RootID(), "")
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = s.CreateFolder(s.RootID(), "   ")
	assert.ErrorIs(t, err, ErrEmptyName)

	assert.Equal(t, 1, s.Stats().TotalFolders)
}

// TestCreateFolderRejectsUnknownParent tests the no-orphan guarantee
func TestCreateFolderRejectsUnknownParent(t *testing.T) {
	s := New()

	_, err := s.CreateFolder("fld_missing", "Orphan")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, s.Stats().TotalFolders)
}

// TestCreateFile tests file creation with metadata
func TestCreateFile(t *testing.T) {
	s := New()

	file, err := s.CreateFile(s.RootID(), "photo.jpg", "image/jpeg", 2048, "/previews/p1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(file.ID, "fil_"))
	assert.Equal(t, "photo.jpg", file.Name)
	assert.Equal(t, "image/jpeg", file.Type)
	assert.Equal(t, int64(2048), file.Size)
	assert.Equal(t, "/previews/p1", file.URL)
	assert.Equal(t, s.RootID(), file.ParentID)
}

// TestCreateFileRejections tests the file creation error cases
func TestCreateFileRejections(t *testing.T) {
	s := New()

	_, err := s.CreateFile(s.RootID(), "  ", "text/plain", 10, "")
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = s.CreateFile(s.RootID(), "neg.txt", "text/plain", -1, "")
	assert.ErrorIs(t, err, ErrNegativeSize)

	_, err = s.CreateFile("fld_missing", "a.txt", "text/plain", 10, "")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, 0, s.Stats().TotalFiles)
}

// TestIDUniqueness tests that folder and file ids never collide
func TestIDUniqueness(t *testing.T) {
	s := New()

	seen := map[string]bool{s.RootID(): true}
	for i := 0; i < 50; i++ {
		folder, err := s.CreateFolder(s.RootID(), "folder")
		require.NoError(t, err)
		assert.False(t, seen[folder.ID])
		seen[folder.ID] = true

		file, err := s.CreateFile(s.RootID(), "file", "text/plain", 1, "")
		require.NoError(t, err)
		assert.False(t, seen[file.ID])
		seen[file.ID] = true
	}
}

// TestRename tests renaming folders and files by a single id lookup
func TestRename(t *testing.T) {
	s := New()
	folder, err := s.CreateFolder(s.RootID(), "old")
	require.NoError(t, err)
	file, err := s.CreateFile(s.RootID(), "old.txt", "text/plain", 1, "")
	require.NoError(t, err)

	require.NoError(t, s.Rename(folder.ID, "  new  "))
	entry, ok := s.Get(folder.ID)
	require.True(t, ok)
	assert.Equal(t, "new", entry.Folder.Name)
	assert.Equal(t, folder.CreatedAt.Unix(), entry.Folder.CreatedAt.Unix())

	require.NoError(t, s.Rename(file.ID, "new.txt"))
	entry, ok = s.Get(file.ID)
	require.True(t, ok)
	assert.Equal(t, "new.txt", entry.File.Name)
	assert.Equal(t, int64(1), entry.File.Size)
}

// TestRenameRejectsBlank tests that blank renames leave the name unchanged
func TestRenameRejectsBlank(t *testing.T) {
	s := New()
	folder, err := s.CreateFolder(s.RootID(), "keep")
	require.NoError(t, err)

	assert.ErrorIs(t, s.Rename(folder.ID, ""), ErrEmptyName)
	assert.ErrorIs(t, s.Rename(folder.ID, "   "), ErrEmptyName)

	entry, _ := s.Get(folder.ID)
	assert.Equal(t, "keep", entry.Folder.Name)
}

// TestRenameSameName tests that renaming to the current name succeeds
func TestRenameSameName(t *testing.T) {
	s := New()
	folder, err := s.CreateFolder(s.RootID(), "same")
	require.NoError(t, err)

	assert.NoError(t, s.Rename(folder.ID, "same"))
}

// TestRenameNotFound tests renaming a missing id
func TestRenameNotFound(t *testing.T) {
	s := New()
	assert.ErrorIs(t, s.Rename("fil_missing", "x"), ErrNotFound)
}

// TestDeleteFile tests that deleting a file removes its annotations
func TestDeleteFile(t *testing.T) {
	s := New()
	file, err := s.CreateFile(s.RootID(), "noted.txt", "text/plain", 1, "")
	require.NoError(t, err)
	_, err = s.AddComment(file.ID, "a comment")
	require.NoError(t, err)
	_, err = s.AddProperty(file.ID, "a property")
	require.NoError(t, err)

	deleted, err := s.Delete(file.ID)
	require.NoError(t, err)
	assert.Empty(t, deleted.FolderIDs)
	assert.Equal(t, []string{file.ID}, deleted.FileIDs)

	_, ok := s.Get(file.ID)
	assert.False(t, ok)
	stats := s.Stats()
	assert.Equal(t, 0, stats.TotalFiles)
	assert.Equal(t, 0, stats.TotalComments)
	assert.Equal(t, 0, stats.TotalProperties)
}

// TestDeleteCascade tests the full descendant closure: root contains folder A,
// A contains folder B and file f1, B contains file f2 with two comments.
// Deleting A removes {A, B}, {f1, f2} and both comments, touching nothing else.
func TestDeleteCascade(t *testing.T) {
	s := New()
	a, err := s.CreateFolder(s.RootID(), "A")
	require.NoError(t, err)
	b, err := s.CreateFolder(a.ID, "B")
	require.NoError(t, err)
	f1, err := s.CreateFile(a.ID, "f1", "text/plain", 1, "")
	require.NoError(t, err)
	f2, err := s.CreateFile(b.ID, "f2", "text/plain", 2, "")
	require.NoError(t, err)
	_, err = s.AddComment(f2.ID, "first")
	require.NoError(t, err)
	_, err = s.AddComment(f2.ID, "second")
	require.NoError(t, err)

	sibling, err := s.CreateFile(s.RootID(), "untouched.txt", "text/plain", 3, "")
	require.NoError(t, err)

	deleted, err := s.Delete(a.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{a.ID, b.ID}, deleted.FolderIDs)
	assert.ElementsMatch(t, []string{f1.ID, f2.ID}, deleted.FileIDs)

	for _, gone := range []string{a.ID, b.ID, f1.ID, f2.ID} {
		_, ok := s.Get(gone)
		assert.False(t, ok, "expected %s to be removed", gone)
	}

	_, ok := s.Get(sibling.ID)
	assert.True(t, ok)
	stats := s.Stats()
	assert.Equal(t, 1, stats.TotalFolders)
	assert.Equal(t, 1, stats.TotalFiles)
	assert.Equal(t, 0, stats.TotalComments)
}

// TestDeleteEmptyFolder tests that deleting a childless folder removes
// exactly that folder
func TestDeleteEmptyFolder(t *testing.T) {
	s := New()
	folder, err := s.CreateFolder(s.RootID(), "empty")
	require.NoError(t, err)

	deleted, err := s.Delete(folder.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{folder.ID}, deleted.FolderIDs)
	assert.Empty(t, deleted.FileIDs)
}

// TestDeleteRootRejected tests that the root folder is never deletable
func TestDeleteRootRejected(t *testing.T) {
	s := New()
	_, err := s.Delete(s.RootID())
	assert.ErrorIs(t, err, ErrRootDelete)

	_, ok := s.Get(s.RootID())
	assert.True(t, ok)
}

// TestDeleteNotFound tests deleting a missing id
func TestDeleteNotFound(t *testing.T) {
	s := New()
	_, err := s.Delete("fld_missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestDeepCascade tests cascade delete over a deeper chain
func TestDeepCascade(t *testing.T) {
	s := New()
	parent := s.RootID()
	var folders []string
	for i := 0; i < 10; i++ {
		folder, err := s.CreateFolder(parent, "level")
		require.NoError(t, err)
		_, err = s.CreateFile(folder.ID, "leaf", "text/plain", 1, "")
		require.NoError(t, err)
		folders = append(folders, folder.ID)
		parent = folder.ID
	}

	deleted, err := s.Delete(folders[0])
	require.NoError(t, err)
	assert.Len(t, deleted.FolderIDs, 10)
	assert.Len(t, deleted.FileIDs, 10)

	stats := s.Stats()
	assert.Equal(t, 1, stats.TotalFolders)
	assert.Equal(t, 0, stats.TotalFiles)
}

// TestComments tests append-only comments with insertion order
func TestComments(t *testing.T) {
	s := New()
	file, err := s.CreateFile(s.RootID(), "a.txt", "text/plain", 1, "")
	require.NoError(t, err)

	first, err := s.AddComment(file.ID, "  first  ")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(first.ID, "cmt_"))
	assert.Equal(t, "first", first.Text)
	assert.Equal(t, file.ID, first.FileID)

	_, err = s.AddComment(file.ID, "second")
	require.NoError(t, err)

	comments, err := s.Comments(file.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Text)
	assert.Equal(t, "second", comments[1].Text)
}

// TestCommentRejections tests the comment error cases
func TestCommentRejections(t *testing.T) {
	s := New()
	file, err := s.CreateFile(s.RootID(), "a.txt", "text/plain", 1, "")
	require.NoError(t, err)

	_, err = s.AddComment(file.ID, "   ")
	assert.ErrorIs(t, err, ErrEmptyText)

	_, err = s.AddComment("fil_missing", "text")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Comments("fil_missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestProperties tests append-only properties with insertion order
func TestProperties(t *testing.T) {
	s := New()
	file, err := s.CreateFile(s.RootID(), "a.txt", "text/plain", 1, "")
	require.NoError(t, err)

	prop, err := s.AddProperty(file.ID, "Model: X")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(prop.ID, "prp_"))

	_, err = s.AddProperty(file.ID, "Resolution: 800x600")
	require.NoError(t, err)

	properties, err := s.Properties(file.ID)
	require.NoError(t, err)
	require.Len(t, properties, 2)
	assert.Equal(t, "Model: X", properties[0].Text)
	assert.Equal(t, "Resolution: 800x600", properties[1].Text)

	_, err = s.AddProperty(file.ID, "")
	assert.ErrorIs(t, err, ErrEmptyText)
}

// TestGet tests tagged entry lookup across both collections
func TestGet(t *testing.T) {
	s := New()
	folder, err := s.CreateFolder(s.RootID(), "F")
	require.NoError(t, err)
	file, err := s.CreateFile(s.RootID(), "f.txt", "text/plain", 1, "")
	require.NoError(t, err)

	entry, ok := s.Get(folder.ID)
	require.True(t, ok)
	assert.Equal(t, types.KindFolder, entry.Kind)
	assert.Equal(t, folder.ID, entry.ID())
	assert.Equal(t, "F", entry.Name())

	entry, ok = s.Get(file.ID)
	require.True(t, ok)
	assert.Equal(t, types.KindFile, entry.Kind)
	assert.Equal(t, file.ID, entry.ID())

	_, ok = s.Get("fld_missing")
	assert.False(t, ok)
}

// TestChildCount tests immediate child counting
func TestChildCount(t *testing.T) {
	s := New()
	folder, err := s.CreateFolder(s.RootID(), "F")
	require.NoError(t, err)
	_, err = s.CreateFolder(folder.ID, "sub")
	require.NoError(t, err)
	_, err = s.CreateFile(folder.ID, "a.txt", "text/plain", 1, "")
	require.NoError(t, err)

	count, err := s.ChildCount(folder.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	_, err = s.ChildCount("fld_missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
