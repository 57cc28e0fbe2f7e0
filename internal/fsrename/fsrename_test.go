package fsrename

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pstuifzand/tui-renamer/internal/rename"
	"github.com/pstuifzand/tui-renamer/internal/sequence"
)

func makeFiles(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0644))
	}
	return dir
}

func readDir(t *testing.T, dir string) map[string]string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	files := make(map[string]string)
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		require.NoError(t, err)
		files[e.Name()] = string(data)
	}
	return files
}

func replaceName(name string) *sequence.Pipeline {
	op := rename.NewReplaceName()
	op.NewName = name
	return sequence.NewPipeline(op)
}

func TestNaturalSort(t *testing.T) {
	names := []string{"file10", "File2", "file1", "file02", "a", "file"}
	SortNatural(names)
	assert.Equal(t, []string{"a", "file", "file1", "File2", "file02", "file10"}, names)
}

func TestListNames(t *testing.T) {
	dir := makeFiles(t, "b10.png", "b9.png")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))

	names, err := ListNames(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"b9.png", "b10.png"}, names)
}

func TestBuildPlanEnumerates(t *testing.T) {
	dir := makeFiles(t, "walk10.png", "walk2.png", "walk1.png")
	names, err := ListNames(dir)
	require.NoError(t, err)

	enum := rename.NewEnumerate()
	enum.SetCountFormatPreset(rename.Underscore)
	replace := rename.NewRemoveCharacters()
	replace.SetOptionPreset(rename.Numbers)
	seq := sequence.NewPipeline(replace, enum)

	plan, err := BuildPlan(context.Background(), dir, names, seq, Options{KeepExtension: true})
	require.NoError(t, err)

	assert.Empty(t, plan.Conflicts)
	assert.Equal(t, []Op{
		{OldName: "walk1.png", NewName: "walk_00.png"},
		{OldName: "walk2.png", NewName: "walk_01.png"},
		{OldName: "walk10.png", NewName: "walk_02.png"},
	}, plan.Ops)
	assert.Len(t, plan.Previews, 3)
	assert.Equal(t, "walk", plan.Previews[0].OriginalName())
	assert.Equal(t, []string{"walk1.png", "walk2.png", "walk10.png"}, plan.Names)
	assert.Equal(t, "walk_02.png", plan.NewName(2))
}

func TestBuildPlanKeepsInvalidNames(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("needs a file system that stores raw bytes")
	}
	const name = "photo\xff.jpg"
	dir := makeFiles(t, name)

	plan, err := BuildPlan(context.Background(), dir, []string{name}, sequence.NewPipeline(rename.NewTrimCharacters()), Options{})
	require.NoError(t, err)
	assert.Empty(t, plan.Ops)
	assert.Equal(t, 1, plan.Unchanged)

	upper := rename.NewChangeCase()
	upper.Casing = rename.Uppercase
	plan, err = BuildPlan(context.Background(), dir, []string{name}, sequence.NewPipeline(upper), Options{KeepExtension: true})
	require.NoError(t, err)
	assert.Equal(t, []Op{{OldName: name, NewName: "PHOTO\xff.jpg"}}, plan.Ops)
}

func regexReplace(pattern, replacement string) *rename.ReplaceString {
	op := rename.NewReplaceString()
	op.UseRegex = true
	op.SearchString = pattern
	op.ReplacementString = replacement
	return op
}

func TestBuildPlanConflicts(t *testing.T) {
	dir := makeFiles(t, "a.txt", "b.txt", "keep.txt", "x.txt")

	seq := sequence.NewPipeline(
		regexReplace(`^a\.txt$`, "keep.txt"),
		regexReplace(`^b\.txt$`, ""),
		regexReplace(`^x\.txt$`, "sub/x.txt"),
	)

	plan, err := BuildPlan(context.Background(), dir, []string{"a.txt", "b.txt", "keep.txt", "x.txt"}, seq, Options{})
	require.NoError(t, err)

	reasons := make(map[string]string)
	for _, c := range plan.Conflicts {
		reasons[c.OldName] = c.Reason
	}
	assert.Equal(t, map[string]string{
		"a.txt": ReasonExistingFile,
		"b.txt": ReasonEmptyName,
		"x.txt": ReasonInvalidName,
	}, reasons)
	assert.Empty(t, plan.Ops)
	assert.Equal(t, 1, plan.Unchanged)
	assert.True(t, plan.HasConflicts())
}

func TestBuildPlanDuplicates(t *testing.T) {
	dir := makeFiles(t, "one", "two", "three")

	plan, err := BuildPlan(context.Background(), dir, []string{"one", "two", "three"}, replaceName("same"), Options{})
	require.NoError(t, err)

	assert.Empty(t, plan.Ops)
	require.Len(t, plan.Conflicts, 3)
	for _, c := range plan.Conflicts {
		assert.Equal(t, ReasonDuplicate, c.Reason)
	}
}

func TestBuildPlanChainedConflict(t *testing.T) {
	// b can't move because c exists, so a can't take b's place either
	dir := makeFiles(t, "a", "b", "c")

	letters := rename.NewAddStringSequence()
	letters.StringSequence = []string{"b", "c", ""}
	strip := rename.NewTrimCharacters()
	strip.NumFrontDeleteChars = 1
	seq := sequence.NewPipeline(strip, letters)

	plan, err := BuildPlan(context.Background(), dir, []string{"a", "b"}, seq, Options{})
	require.NoError(t, err)

	assert.Empty(t, plan.Ops)
	require.Len(t, plan.Conflicts, 2)
	for _, c := range plan.Conflicts {
		assert.Equal(t, ReasonExistingFile, c.Reason)
	}
}

func TestApplySwapAndUndo(t *testing.T) {
	dir := makeFiles(t, "a", "b")
	plan := &Plan{Dir: dir, Ops: []Op{{OldName: "a", NewName: "b"}, {OldName: "b", NewName: "a"}}}

	journal, err := Apply(plan)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "b", "b": "a"}, readDir(t, dir))

	path := filepath.Join(t.TempDir(), "journals", "last.json")
	require.NoError(t, journal.Save(path))
	loaded, err := LoadJournal(path)
	require.NoError(t, err)
	assert.Equal(t, journal.Ops, loaded.Ops)
	assert.Equal(t, dir, loaded.Dir)

	require.NoError(t, Undo(loaded))
	assert.Equal(t, map[string]string{"a": "a", "b": "b"}, readDir(t, dir))
}

func TestApplyPlan(t *testing.T) {
	dir := makeFiles(t, "img1.png", "img2.png")
	names, err := ListNames(dir)
	require.NoError(t, err)

	add := rename.NewAddString()
	add.Prefix = "hero_"
	plan, err := BuildPlan(context.Background(), dir, names, sequence.NewPipeline(add), Options{})
	require.NoError(t, err)

	_, err = Apply(plan)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"hero_img1.png": "img1.png", "hero_img2.png": "img2.png"}, readDir(t, dir))
}

func TestApplyRollsBack(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("rename semantics differ")
	}
	dir := makeFiles(t, "a", "b")
	plan := &Plan{Dir: dir, Ops: []Op{{OldName: "a", NewName: "c"}, {OldName: "missing", NewName: "d"}}}

	_, err := Apply(plan)
	require.Error(t, err)
	assert.Equal(t, map[string]string{"a": "a", "b": "b"}, readDir(t, dir))
}

func TestApplyEmpty(t *testing.T) {
	_, err := Apply(&Plan{Dir: t.TempDir()})
	assert.ErrorIs(t, err, ErrNothingToApply)
	assert.ErrorIs(t, Undo(&Journal{}), ErrNothingToApply)
}

func TestUndoMissingFile(t *testing.T) {
	dir := makeFiles(t, "x")
	err := Undo(&Journal{Dir: dir, Ops: []Op{{OldName: "a", NewName: "gone"}}})
	assert.Error(t, err)
	assert.Equal(t, map[string]string{"x": "x"}, readDir(t, dir))
}

func TestLoadJournalErrors(t *testing.T) {
	_, err := LoadJournal(filepath.Join(t.TempDir(), "none.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0644))
	_, err = LoadJournal(path)
	assert.Error(t, err)
}
