package candidates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestSpecKindAndSet(t *testing.T) {
	cases := []struct {
		spec Spec
		kind string
		set  int
	}{
		{Spec{Words: []string{}}, "words", 1},
		{Spec{File: "a.txt"}, "file", 1},
		{Spec{Source: "https://x/y"}, "source", 1},
		{Spec{TerraformModule: "."}, "terraform_module", 1},
		{Spec{}, "", 0},
		{Spec{Words: []string{"a"}, File: "b"}, "words", 2},
	}
	for _, c := range cases {
		if got := c.spec.Kind(); got != c.kind {
			t.Errorf("%+v: kind %q want %q", c.spec, got, c.kind)
		}
		if got := c.spec.Set(); got != c.set {
			t.Errorf("%+v: set %d want %d", c.spec, got, c.set)
		}
	}
}

func TestLocalPaths(t *testing.T) {
	specs := []Spec{
		{Name: "w", Words: []string{"a"}},
		{Name: "f", File: "words.txt", BaseDir: "/etc/termline"},
		{Name: "abs", File: "/opt/words.txt", BaseDir: "/etc/termline"},
		{Name: "r", Source: "https://example.com/w.txt"},
		{Name: "tf", TerraformModule: "infra", BaseDir: "/etc/termline"},
	}
	want := []string{"/etc/termline/words.txt", "/opt/words.txt", "/etc/termline/infra"}
	if diff := cmp.Diff(want, LocalPaths(specs)); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestReadWordFile_Text(t *testing.T) {
	p := writeFile(t, t.TempDir(), "words.txt", "# pets\nkitten kitchen\r\n\n  java # lang\n")
	got, err := readWordFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"kitten", "kitchen", "java"}, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestReadWordFile_JSON(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "words.json", `["photon", "physics"]`)
	got, err := readWordFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"photon", "physics"}, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	bad := writeFile(t, dir, "bad.json", `{"not":"a list"}`)
	if _, err := readWordFile(bad); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestResolve_OrderAndDedupe(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "more.txt", "kitchen\nmusic\n")
	specs := []Spec{
		{Name: "inline", Words: []string{"kitten", " ", "kitchen"}},
		{Name: "file", File: "more.txt", BaseDir: dir},
	}
	got, err := Resolve(context.Background(), specs, "")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"kitten", "kitchen", "music"}, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestResolve_PartialFailure(t *testing.T) {
	specs := []Spec{
		{Name: "missing", File: filepath.Join(t.TempDir(), "nope.txt")},
		{Name: "inline", Words: []string{"java"}},
		{Name: "empty"},
	}
	got, err := Resolve(context.Background(), specs, "")
	if err == nil {
		t.Fatalf("expected aggregated error")
	}
	for _, frag := range []string{`candidates "missing"`, `candidates "empty"`} {
		if !strings.Contains(err.Error(), frag) {
			t.Errorf("error missing %q: %v", frag, err)
		}
	}
	if diff := cmp.Diff([]string{"java"}, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestFetch_HTTPCachesDownload(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		_, _ = w.Write([]byte("memory\nminecraft\n"))
	}))
	defer srv.Close()

	cache := t.TempDir()
	spec := Spec{Name: "remote", Source: srv.URL + "/words.txt"}
	got, err := spec.Load(context.Background(), cache)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff([]string{"memory", "minecraft"}, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	n := atomic.LoadInt32(&hits)
	if n == 0 {
		t.Fatalf("server never hit")
	}
	if _, err := spec.Load(context.Background(), cache); err != nil {
		t.Fatalf("cached Load: %v", err)
	}
	if atomic.LoadInt32(&hits) != n {
		t.Fatalf("second load went to the network")
	}
}

func TestFetch_LocalSourceRelativeToBaseDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "lists/words.json", `["noob","mesabloo"]`)
	spec := Spec{Name: "local", Source: "./lists/words.json", BaseDir: dir}
	got, err := spec.Load(context.Background(), t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff([]string{"noob", "mesabloo"}, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestFetch_RequiresCacheDir(t *testing.T) {
	if _, err := fetch(context.Background(), "https://example.com/w.txt", "", ""); err == nil {
		t.Fatalf("expected error without cache dir")
	}
}

func TestSourceExt(t *testing.T) {
	cases := map[string]string{
		"https://example.com/words.json?ref=1": ".json",
		"git::https://example.com/repo.git":    ".git",
		"./words.txt":                          ".txt",
		"https://example.com/words":            "",
	}
	for in, want := range cases {
		if got := sourceExt(in); got != want {
			t.Errorf("sourceExt(%q)=%q want %q", in, got, want)
		}
	}
}

func TestTerraformSymbols(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main.tf", `
variable "region" {}

module "net" {
  source = "./net"
}

resource "aws_instance" "web" {}

data "aws_ami" "ubuntu" {}

output "ip" {
  value = aws_instance.web.public_ip
}
`)
	got, err := terraformSymbols(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"aws_instance.web",
		"data.aws_ami.ubuntu",
		"module.net",
		"output.ip",
		"var.region",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestTerraformSymbols_NotAModule(t *testing.T) {
	if _, err := terraformSymbols(t.TempDir()); err == nil {
		t.Fatalf("expected error for empty directory")
	}
}
