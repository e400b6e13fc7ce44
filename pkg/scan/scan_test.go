package scan

import (
	"reflect"
	"testing"
	"testing/fstest"
)

func TestScan_SelectsAllowedExtensionsOnly(t *testing.T) {
	fsys := fstest.MapFS{
		"root/a.jpg": &fstest.MapFile{Data: []byte("a")},
		"root/b.txt": &fstest.MapFile{Data: []byte("b")},
		"root/c.png": &fstest.MapFile{Data: []byte("c")},
	}

	got, err := Scan(fsys, "root", DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"a.jpg", "c.png"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected result\n got: %#v\nwant: %#v", got, want)
	}
}

func TestScan_ExtensionsAreCaseInsensitive(t *testing.T) {
	fsys := fstest.MapFS{
		"root/A.JPG":  &fstest.MapFile{Data: []byte("a")},
		"root/b.Jpeg": &fstest.MapFile{Data: []byte("b")},
		"root/c.GIF":  &fstest.MapFile{Data: []byte("c")},
		"root/d.webp": &fstest.MapFile{Data: []byte("d")},
	}

	got, err := Scan(fsys, "root", DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"A.JPG", "b.Jpeg", "c.GIF"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected result\n got: %#v\nwant: %#v", got, want)
	}
}

func TestScan_MaxDepth(t *testing.T) {
	fsys := fstest.MapFS{
		"root/a.jpg":            &fstest.MapFile{Data: []byte("a")},
		"root/b.GIF":            &fstest.MapFile{Data: []byte("b")},
		"root/c.txt":            &fstest.MapFile{Data: []byte("c")},
		"root/sub/d.png":        &fstest.MapFile{Data: []byte("d")},
		"root/sub/nested/e.jpg": &fstest.MapFile{Data: []byte("e")},
	}

	testCases := []struct {
		name     string
		maxDepth int
		want     []string
	}{
		{
			name:     "depth 0 skips subdirectories",
			maxDepth: 0,
			want:     []string{"a.jpg", "b.GIF"},
		},
		{
			name:     "depth 1 includes one subdirectory",
			maxDepth: 1,
			want:     []string{"a.jpg", "b.GIF", "sub/d.png"},
		},
		{
			name:     "unlimited includes nested subdirectories",
			maxDepth: -1,
			want:     []string{"a.jpg", "b.GIF", "sub/d.png", "sub/nested/e.jpg"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.MaxDepth = tc.maxDepth

			got, err := Scan(fsys, "root", opts)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("unexpected result\n got: %#v\nwant: %#v", got, tc.want)
			}
		})
	}
}

func TestScan_InvalidMaxDepth(t *testing.T) {
	fsys := fstest.MapFS{}

	opts := DefaultOptions()
	opts.MaxDepth = -2

	_, err := Scan(fsys, "root", opts)
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestMatch(t *testing.T) {
	opts := DefaultOptions()
	for name, want := range map[string]bool{
		"x.jpeg":  true,
		"x.PNG":   true,
		"x.tiff":  false,
		"noext":   false,
		"dir/y.g": false,
	} {
		if got := Match(name, opts); got != want {
			t.Fatalf("Match(%q) = %v, want %v", name, got, want)
		}
	}
}
