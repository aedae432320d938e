package cli

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/emizen/notesapp/internal/models"
)

// AddNote prompts for the note fields, reads any photo files from disk and
// saves the note. Photos are attached in the order they were entered.
func (a *App) AddNote(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	title, err := GetSimpleText(a.reader, "Enter title:")
	if err != nil {
		return err
	}
	description, err := GetMultiline(a.reader, "Enter description (empty line to finish):")
	if err != nil {
		return err
	}

	var photos [][]byte
	for {
		path, err := GetSimpleText(a.reader, "Photo file path (empty to finish):")
		if err != nil {
			return err
		}
		if path == "" {
			break
		}
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Println("Cannot read file:", err)
			continue
		}
		photos = append(photos, data)
	}

	note, err := a.notes.Create(ctx, title, description, photos)
	if err != nil {
		fmt.Println(userMessage(err))
		return err
	}

	fmt.Printf("Saved note %s (%d photos)\n", note.ID, len(note.PhotoRefs))
	return nil
}

// List prints all notes, newest first.
func (a *App) List(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	all, err := a.notes.List(ctx)
	if err != nil {
		fmt.Println(userMessage(err))
		return err
	}
	if len(all) == 0 {
		fmt.Println("No notes yet.")
		return nil
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	for _, n := range all {
		fmt.Printf("%s  %s  %q (%d photos)\n",
			n.ID, n.CreatedAt.Local().Format("2006-01-02 15:04"), n.Title, len(n.PhotoRefs))
	}
	return nil
}

// Show prints one note in full, including the size of each attached photo.
func (a *App) Show(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return nil
	}

	note, err := a.noteByArg(ctx, args)
	if err != nil {
		return err
	}

	fmt.Printf("Title: %s\nCreated: %s\n\n%s\n",
		note.Title, note.CreatedAt.Local().Format("2006-01-02 15:04"), note.Description)
	for _, ref := range note.PhotoRefs {
		data, err := a.notes.Photo(ctx, ref)
		if err != nil {
			fmt.Printf("Photo %s: missing\n", ref)
			continue
		}
		fmt.Printf("Photo %s: %d bytes\n", ref, len(data))
	}
	return nil
}

// Delete removes a note and its photos.
func (a *App) Delete(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return nil
	}

	note, err := a.noteByArg(ctx, args)
	if err != nil {
		return err
	}

	if err := a.notes.Delete(ctx, note.ID); err != nil {
		fmt.Println(userMessage(err))
		return err
	}
	fmt.Println("Deleted.")
	return nil
}

// Export writes a note's photos into the current directory under their
// blob filenames.
func (a *App) Export(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return nil
	}

	note, err := a.noteByArg(ctx, args)
	if err != nil {
		return err
	}
	if len(note.PhotoRefs) == 0 {
		fmt.Println("Note has no photos.")
		return nil
	}

	for _, ref := range note.PhotoRefs {
		data, err := a.notes.Photo(ctx, ref)
		if err != nil {
			fmt.Printf("Photo %s: %s\n", ref, userMessage(err))
			continue
		}
		if err := os.WriteFile(ref, data, 0o600); err != nil {
			fmt.Println("Cannot write file:", err)
			continue
		}
		fmt.Println("Wrote", ref)
	}
	return nil
}

// noteByArg resolves the note named by the first argument, prompting for an
// id when no argument was given.
func (a *App) noteByArg(ctx context.Context, args []string) (*models.Note, error) {
	var id string
	if len(args) > 0 {
		id = args[0]
	} else {
		var err error
		id, err = GetSimpleText(a.reader, "Enter note id:")
		if err != nil {
			return nil, err
		}
	}

	note, err := a.notes.Get(ctx, id)
	if err != nil {
		fmt.Println(userMessage(err))
		return nil, err
	}
	return note, nil
}

func (a *App) requireLogin() bool {
	if a.isLoggedIn() {
		return true
	}
	fmt.Println("Please login first.")
	return false
}
