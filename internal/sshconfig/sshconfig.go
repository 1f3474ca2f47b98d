// Package sshconfig resolves an API base URL from the user's SSH
// client configuration, so a lab VM reachable as `ssh phis-prod` can be
// targeted without hardcoding its address.
package sshconfig

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/kevinburke/ssh_config"
	"github.com/spf13/afero"
)

// DefaultPort is the REST port used when a host entry does not carry
// its own Port directive.
const DefaultPort = 28081

// ErrNoHosts is returned when resolution is attempted against an
// empty or absent SSH config.
var ErrNoHosts = errors.New("no hosts found in SSH config")

// Host is one alias block from the SSH config file.
type Host struct {
	Alias        string
	HostName     string
	Port         int
	User         string
	IdentityFile string
}

// Resolver reads host entries from an SSH config file. Entries are
// parsed fresh on each call; nothing is cached.
type Resolver struct {
	fs   afero.Fs
	path string
	in   io.Reader
	out  io.Writer
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithFs replaces the filesystem (used by tests).
func WithFs(fs afero.Fs) Option {
	return func(r *Resolver) { r.fs = fs }
}

// WithPath overrides the SSH config path.
func WithPath(path string) Option {
	return func(r *Resolver) { r.path = path }
}

// WithPrompt sets the reader/writer used for interactive selection.
func WithPrompt(in io.Reader, out io.Writer) Option {
	return func(r *Resolver) {
		r.in = in
		r.out = out
	}
}

// NewResolver creates a resolver over ~/.ssh/config by default.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		fs:  afero.NewOsFs(),
		in:  os.Stdin,
		out: os.Stdout,
	}
	if home, err := os.UserHomeDir(); err == nil {
		r.path = filepath.Join(home, ".ssh", "config")
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Hosts parses the config file into a map of alias to host entry. A
// missing file yields an empty map, not an error. Wildcard patterns
// are not selectable aliases and are skipped.
func (r *Resolver) Hosts() (map[string]Host, error) {
	f, err := r.fs.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]Host{}, nil
		}
		return nil, fmt.Errorf("open SSH config: %w", err)
	}
	defer f.Close()

	cfg, err := ssh_config.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("parse SSH config %s: %w", r.path, err)
	}

	hosts := make(map[string]Host)
	for _, block := range cfg.Hosts {
		for _, pattern := range block.Patterns {
			alias := pattern.String()
			if strings.ContainsAny(alias, "*?!") {
				continue
			}
			entry := Host{Alias: alias}
			for _, node := range block.Nodes {
				kv, ok := node.(*ssh_config.KV)
				if !ok {
					continue
				}
				switch strings.ToLower(kv.Key) {
				case "hostname":
					entry.HostName = kv.Value
				case "port":
					if p, err := strconv.Atoi(kv.Value); err == nil {
						entry.Port = p
					}
				case "user":
					entry.User = kv.Value
				case "identityfile":
					entry.IdentityFile = kv.Value
				}
			}
			hosts[alias] = entry
		}
	}
	return hosts, nil
}

// Get looks up one alias exactly.
func (r *Resolver) Get(alias string) (Host, bool, error) {
	hosts, err := r.Hosts()
	if err != nil {
		return Host{}, false, err
	}
	h, ok := hosts[alias]
	return h, ok, nil
}

// SelectInteractive lists all aliases and prompts for a 1-based choice.
// Invalid numeric input re-prompts; "q" or end of input quits, in
// which case ok is false.
func (r *Resolver) SelectInteractive() (alias string, ok bool, err error) {
	hosts, err := r.Hosts()
	if err != nil {
		return "", false, err
	}
	if len(hosts) == 0 {
		return "", false, ErrNoHosts
	}

	aliases := make([]string, 0, len(hosts))
	for a := range hosts {
		aliases = append(aliases, a)
	}
	sort.Strings(aliases)

	fmt.Fprintln(r.out, "Available SSH hosts:")
	for i, a := range aliases {
		h := hosts[a]
		port := h.Port
		if port == 0 {
			port = DefaultPort
		}
		fmt.Fprintf(r.out, "%3d. %s (%s:%d)\n", i+1, a, h.HostName, port)
	}

	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Fprintf(r.out, "Select host (1-%d, q to quit): ", len(aliases))
		if !scanner.Scan() {
			return "", false, scanner.Err()
		}
		input := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(input, "q") || strings.EqualFold(input, "quit") {
			return "", false, nil
		}
		choice, err := strconv.Atoi(input)
		if err != nil || choice < 1 || choice > len(aliases) {
			fmt.Fprintln(r.out, "Invalid choice, try again.")
			continue
		}
		return aliases[choice-1], true, nil
	}
}

// Resolve turns an alias into a base URL. An explicit alias is looked
// up first; if it is missing (or none was given) the choice falls back
// to interactive selection. An empty host map is a configuration
// error.
func (r *Resolver) Resolve(alias string) (string, error) {
	hosts, err := r.Hosts()
	if err != nil {
		return "", err
	}
	if len(hosts) == 0 {
		return "", ErrNoHosts
	}

	if alias != "" {
		if h, ok := hosts[alias]; ok {
			return BaseURL(h)
		}
		fmt.Fprintf(r.out, "Host %q not found in SSH config.\n", alias)
	}

	chosen, ok, err := r.SelectInteractive()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errors.New("no host selected")
	}
	return BaseURL(hosts[chosen])
}

// BaseURL formats the REST base URL for a host entry, applying
// DefaultPort when the entry has no Port directive.
func BaseURL(h Host) (string, error) {
	if h.HostName == "" {
		return "", fmt.Errorf("host %q has no HostName", h.Alias)
	}
	port := h.Port
	if port == 0 {
		port = DefaultPort
	}
	return fmt.Sprintf("http://%s:%d/rest", h.HostName, port), nil
}
