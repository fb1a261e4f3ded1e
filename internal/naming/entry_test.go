package naming

import (
	"strings"
	"testing"
)

var jpegOnly = []string{".jpg", ".jpeg"}

func TestMatchEntry(t *testing.T) {
	const marker = "Google Photos"

	tests := []struct {
		name           string
		path           string
		wantOK         bool
		wantSubfolders []string
		wantFilename   string
	}{
		{
			"marker immediate parent",
			"Takeout/Google Photos/photo.jpg",
			true, nil, "photo.jpg",
		},
		{
			"one subfolder",
			"Takeout/Google Photos/Trip/photo.jpg",
			true, []string{"Trip"}, "photo.jpg",
		},
		{
			"nested subfolders preserve order",
			"Takeout/Google Photos/2023/Summer/Beach/img.jpeg",
			true, []string{"2023", "Summer", "Beach"}, "img.jpeg",
		},
		{
			"marker at path start",
			"Google Photos/Trip/photo.jpg",
			true, []string{"Trip"}, "photo.jpg",
		},
		{
			"uppercase extension accepted",
			"Takeout/Google Photos/Trip/PHOTO.JPG",
			true, []string{"Trip"}, "PHOTO.JPG",
		},
		{
			"no marker component",
			"Other Folder/photo.jpg",
			false, nil, "",
		},
		{
			"marker match is case-sensitive",
			"Takeout/google photos/photo.jpg",
			false, nil, "",
		},
		{
			"marker must be a whole component",
			"Takeout/Google Photos Backup/photo.jpg",
			false, nil, "",
		},
		{
			"wrong extension",
			"Takeout/Google Photos/notes.txt",
			false, nil, "",
		},
		{
			"metadata sidecar excluded",
			"Takeout/Google Photos/Trip/photo.jpg.json",
			false, nil, "",
		},
		{
			"no extension",
			"Takeout/Google Photos/README",
			false, nil, "",
		},
		{
			"marker is the final component",
			"Takeout/Google Photos",
			false, nil, "",
		},
		{
			"empty path",
			"",
			false, nil, "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MatchEntry(tt.path, marker, jpegOnly)
			if ok != tt.wantOK {
				t.Fatalf("MatchEntry(%q) ok = %v, want %v", tt.path, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.Filename != tt.wantFilename {
				t.Errorf("Filename = %q, want %q", got.Filename, tt.wantFilename)
			}
			if strings.Join(got.Subfolders, "/") != strings.Join(tt.wantSubfolders, "/") {
				t.Errorf("Subfolders = %v, want %v", got.Subfolders, tt.wantSubfolders)
			}
		})
	}
}

func TestMatchEntry_FirstMarkerOccurrenceWins(t *testing.T) {
	got, ok := MatchEntry("Google Photos/Old/Google Photos/photo.jpg", "Google Photos", jpegOnly)
	if !ok {
		t.Fatal("expected match")
	}
	// Subfolders are relative to the first marker occurrence; a repeated
	// marker deeper in the path is an ordinary subfolder.
	want := []string{"Old", "Google Photos"}
	if strings.Join(got.Subfolders, "/") != strings.Join(want, "/") {
		t.Errorf("Subfolders = %v, want %v", got.Subfolders, want)
	}
}

func TestMatchEntry_CustomExtensions(t *testing.T) {
	exts := []string{".png"}
	if _, ok := MatchEntry("Google Photos/shot.png", "Google Photos", exts); !ok {
		t.Error("png should match custom allow-list")
	}
	if _, ok := MatchEntry("Google Photos/shot.jpg", "Google Photos", exts); ok {
		t.Error("jpg should not match png-only allow-list")
	}
}
