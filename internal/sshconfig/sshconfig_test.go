package sshconfig

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

const testConfig = `# lab machines
Host phis-prod
    HostName 192.168.1.10
    Port 2222
    User silex
    IdentityFile ~/.ssh/id_prod

Host opensilex-dev
    HostName 10.0.0.5

Host *
    ServerAliveInterval 60
`

func newTestResolver(t *testing.T, config string, input string) (*Resolver, *bytes.Buffer) {
	t.Helper()
	fs := afero.NewMemMapFs()
	if config != "" {
		if err := afero.WriteFile(fs, "/home/test/.ssh/config", []byte(config), 0600); err != nil {
			t.Fatalf("writing test config: %v", err)
		}
	}
	out := &bytes.Buffer{}
	r := NewResolver(
		WithFs(fs),
		WithPath("/home/test/.ssh/config"),
		WithPrompt(strings.NewReader(input), out),
	)
	return r, out
}

func TestHosts_TwoBlocks(t *testing.T) {
	r, _ := newTestResolver(t, testConfig, "")

	hosts, err := r.Hosts()
	if err != nil {
		t.Fatalf("Hosts failed: %v", err)
	}
	if len(hosts) != 2 {
		t.Fatalf("expected 2 aliases, got %d: %v", len(hosts), hosts)
	}

	prod := hosts["phis-prod"]
	if prod.HostName != "192.168.1.10" {
		t.Errorf("unexpected hostname: %q", prod.HostName)
	}
	if prod.Port != 2222 {
		t.Errorf("unexpected port: %d", prod.Port)
	}
	if prod.User != "silex" {
		t.Errorf("unexpected user: %q", prod.User)
	}

	dev := hosts["opensilex-dev"]
	if dev.HostName != "10.0.0.5" {
		t.Errorf("unexpected hostname: %q", dev.HostName)
	}
	if dev.Port != 0 {
		t.Errorf("expected no port, got %d", dev.Port)
	}
}

func TestHosts_MissingFile(t *testing.T) {
	r, _ := newTestResolver(t, "", "")

	hosts, err := r.Hosts()
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if len(hosts) != 0 {
		t.Errorf("expected empty map, got %v", hosts)
	}
}

func TestGet_Missing(t *testing.T) {
	r, _ := newTestResolver(t, testConfig, "")

	_, ok, err := r.Get("nope")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("expected no match")
	}
}

func TestResolve_ExplicitAlias(t *testing.T) {
	r, _ := newTestResolver(t, testConfig, "")

	url, err := r.Resolve("phis-prod")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if url != "http://192.168.1.10:2222/rest" {
		t.Errorf("unexpected URL: %q", url)
	}
}

func TestResolve_DefaultPort(t *testing.T) {
	r, _ := newTestResolver(t, testConfig, "")

	url, err := r.Resolve("opensilex-dev")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if url != "http://10.0.0.5:28081/rest" {
		t.Errorf("unexpected URL: %q", url)
	}
}

func TestResolve_MissingAliasFallsBackToInteractive(t *testing.T) {
	// Aliases list sorted: 1=opensilex-dev, 2=phis-prod.
	r, out := newTestResolver(t, testConfig, "1\n")

	url, err := r.Resolve("does-not-exist")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if url != "http://10.0.0.5:28081/rest" {
		t.Errorf("unexpected URL: %q", url)
	}
	if !strings.Contains(out.String(), `"does-not-exist" not found`) {
		t.Errorf("expected a not-found notice, got %q", out.String())
	}
}

func TestResolve_EmptyConfig(t *testing.T) {
	r, _ := newTestResolver(t, "", "")

	_, err := r.Resolve("anything")
	if !errors.Is(err, ErrNoHosts) {
		t.Fatalf("expected ErrNoHosts, got %v", err)
	}
}

func TestSelectInteractive_InvalidInputLoops(t *testing.T) {
	r, out := newTestResolver(t, testConfig, "abc\n0\n9\n2\n")

	alias, ok, err := r.SelectInteractive()
	if err != nil {
		t.Fatalf("SelectInteractive failed: %v", err)
	}
	if !ok || alias != "phis-prod" {
		t.Errorf("expected phis-prod selected, got %q ok=%t", alias, ok)
	}
	if strings.Count(out.String(), "Invalid choice") != 3 {
		t.Errorf("expected 3 invalid-choice notices, got output %q", out.String())
	}
}

func TestSelectInteractive_Quit(t *testing.T) {
	r, _ := newTestResolver(t, testConfig, "q\n")

	alias, ok, err := r.SelectInteractive()
	if err != nil {
		t.Fatalf("SelectInteractive failed: %v", err)
	}
	if ok || alias != "" {
		t.Errorf("expected quit, got %q ok=%t", alias, ok)
	}
}

func TestSelectInteractive_EOF(t *testing.T) {
	r, _ := newTestResolver(t, testConfig, "")

	_, ok, err := r.SelectInteractive()
	if err != nil {
		t.Fatalf("SelectInteractive failed: %v", err)
	}
	if ok {
		t.Error("expected no selection on end of input")
	}
}

func TestBaseURL_RequiresHostName(t *testing.T) {
	if _, err := BaseURL(Host{Alias: "x"}); err == nil {
		t.Error("expected error for entry without HostName")
	}
}
