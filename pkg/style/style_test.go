package style

import (
	"errors"
	"image/color"
	"reflect"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var (
	orange = color.NRGBA{R: 0xFF, G: 0xA5, B: 0x00, A: 0xFF}
	black  = color.NRGBA{A: 0xFF}
	white  = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

func TestResolve_Precedence(t *testing.T) {
	testCases := []struct {
		name        string
		req         Request
		wantFill    color.Color
		wantOutline color.Color
	}{
		{
			name:        "default preset",
			req:         Request{},
			wantFill:    orange,
			wantOutline: black,
		},
		{
			name:        "named preset is case-insensitive",
			req:         Request{Preset: "BLACK"},
			wantFill:    black,
			wantOutline: white,
		},
		{
			name:        "outline overrides preset",
			req:         Request{Preset: "yellow", Outline: "#FFFFFF"},
			wantFill:    color.NRGBA{R: 0xFF, G: 0xFF, A: 0xFF},
			wantOutline: white,
		},
		{
			name:        "explicit color skips preset outline",
			req:         Request{Preset: "purple", Color: "#FF0000"},
			wantFill:    color.NRGBA{R: 0xFF, A: 0xFF},
			wantOutline: nil,
		},
		{
			name:        "explicit color and outline",
			req:         Request{Color: "#FF0000", Outline: "#000"},
			wantFill:    color.NRGBA{R: 0xFF, A: 0xFF},
			wantOutline: black,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Resolve(Builtin(), tc.req, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got.Fill, tc.wantFill) {
				t.Fatalf("unexpected fill\n got: %#v\nwant: %#v", got.Fill, tc.wantFill)
			}
			if !reflect.DeepEqual(got.Outline, tc.wantOutline) {
				t.Fatalf("unexpected outline\n got: %#v\nwant: %#v", got.Outline, tc.wantOutline)
			}
		})
	}
}

func TestResolve_UnknownPresetWarnsAndUsesDefault(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	got, err := Resolve(Builtin(), Request{Preset: "magenta"}, zap.New(core))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, Colors{Fill: orange, Outline: black}) {
		t.Fatalf("unexpected colors: %#v", got)
	}

	entries := logs.FilterField(zap.String("preset", "magenta")).All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 warning for magenta, got %d", len(entries))
	}
	if entries[0].Message != "Color preset 'magenta' not found. Using default." {
		t.Fatalf("unexpected warning message %q", entries[0].Message)
	}
}

func TestResolve_InvalidColor(t *testing.T) {
	_, err := Resolve(Builtin(), Request{Color: "#GG0000"}, nil)
	if !errors.Is(err, ErrInvalidColor) {
		t.Fatalf("expected ErrInvalidColor, got %v", err)
	}
	_, err = Resolve(Builtin(), Request{Outline: "nope"}, nil)
	if !errors.Is(err, ErrInvalidColor) {
		t.Fatalf("expected ErrInvalidColor, got %v", err)
	}
}

func TestParseColor(t *testing.T) {
	testCases := []struct {
		in      string
		want    color.Color
		wantErr bool
	}{
		{in: "#FFA500", want: orange},
		{in: "#ffa500", want: orange},
		{in: "#fff", want: white},
		{in: "#00000080", want: color.NRGBA{A: 0x80}},
		{in: "#0008", want: color.NRGBA{A: 0x88}},
		{in: "red", want: color.RGBA{R: 0xFF, A: 0xFF}},
		{in: "Orange", want: color.RGBA{R: 0xFF, G: 0xA5, A: 0xFF}},
		{in: "FFA500", wantErr: true},
		{in: "#12345", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range testCases {
		got, err := ParseColor(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidColor) {
				t.Fatalf("ParseColor(%q): expected ErrInvalidColor, got %v", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseColor(%q): unexpected error: %v", tc.in, err)
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("ParseColor(%q)\n got: %#v\nwant: %#v", tc.in, got, tc.want)
		}
	}
}

func TestPresets_Names(t *testing.T) {
	want := []string{"black", "blue", "green", "orange", "purple", "white", "yellow"}
	if got := Builtin().Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected names\n got: %v\nwant: %v", got, want)
	}
}
