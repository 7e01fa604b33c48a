package mutagen

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	type args struct {
		contents string
		target   string
	}
	tests := []struct {
		name    string
		args    args
		want    string
		wantErr bool
	}{
		{
			"position file from find",
			args{"res\tloci\tchain\tchain_pos\r\nS\t1\tP\t1\r\nK\t3\tL\t42B\r\n", "a"},
			"SP1a,KL42Ba",
			false,
		},
		{
			"unix line endings and a trailing blank line",
			args{"res\tloci\tchain\tchain_pos\nD\t10\tA\t12\n\n", "G"},
			"DA12G",
			false,
		},
		{
			"header only",
			args{"res\tloci\tchain\tchain_pos\r\n", "a"},
			"",
			false,
		},
		{
			"malformed row",
			args{"res\tloci\tchain\tchain_pos\r\nS\t1\tP\r\n", "a"},
			"",
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(strings.NewReader(tt.args.contents), tt.args.target)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Read() error = %v, wantErr %v", err, tt.wantErr)
			}
			if joined := Join(got); joined != tt.want {
				t.Errorf("Join(Read()) = %s, want %s", joined, tt.want)
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "positions.tsv")
	if err := os.WriteFile(path, []byte("res\tloci\tchain\tchain_pos\r\nK\t3\tL\t7\r\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadFile(path, "a")
	if err != nil {
		t.Fatal(err)
	}
	want := []Mutation{{Residue: "K", Chain: "L", ChainPos: "7", Target: "a"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadFile() = %+v, want %+v", got, want)
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.tsv"), "a"); err == nil {
		t.Error("ReadFile() expected an error for a missing file")
	}
}
