// Package cmdtest runs in-process command line tests described in YAML files.
//
// Each file holds a list of cases, either at the top level or under a "tests"
// key:
//
//	tests:
//	  - name: window
//	    cmd: rangeview
//	    args: [slice, -r, "[1,4)", "10", "20", "30", "40", "50"]
//	    stdin: ""
//	    env: {RANGEVIEW_OUTPUT_FORMAT: comma}
//	    expect:
//	      stdout: "20,30,40\n"
//	      exitCode: 0
//
// With update enabled, mismatching expectations are written back to the file.
package cmdtest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"gopkg.in/yaml.v3"
)

// TestData is a single case.
type TestData struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Cmd         string            `yaml:"cmd"`   // name given to Register
	Args        []string          `yaml:"args"`  // argument list, no shell quoting involved
	Stdin       string            `yaml:"stdin"` // fed to os.Stdin
	Env         map[string]string `yaml:"env"`
	Expect      struct {
		Stdout   string `yaml:"stdout"`
		Stderr   string `yaml:"stderr"`
		ExitCode int    `yaml:"exitCode"`
	} `yaml:"expect"`
}

// TestGroup is the content of one YAML file.
type TestGroup struct {
	Name  string     // base name of the file
	Tests []TestData `yaml:"tests"`
}

type TestSuite struct {
	groups   []*TestGroup
	commands map[string]func() int
	backings map[*TestGroup]*groupBacking
	mu       sync.Mutex
}

// groupBacking keeps the parsed node tree so updates preserve comments and layout.
type groupBacking struct {
	path      string
	root      *yaml.Node
	testNodes []*yaml.Node
}

// Read loads every .yaml/.yml file below dir.
func Read(dir string) (*TestSuite, error) {
	suite := &TestSuite{
		commands: make(map[string]func() int),
		backings: make(map[*TestGroup]*groupBacking),
	}
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		ext := strings.ToLower(filepath.Ext(path))
		if d.IsDir() || (ext != ".yaml" && ext != ".yml") {
			return nil
		}
		group, backing, err := readGroup(path)
		if err != nil {
			return err
		}
		suite.groups = append(suite.groups, group)
		suite.backings[group] = backing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return suite, nil
}

func readGroup(path string) (*TestGroup, *groupBacking, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(root.Content) == 0 {
		return nil, nil, fmt.Errorf("%s: empty yaml", path)
	}
	testsNode, err := locateTestsNode(root.Content[0])
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	group := &TestGroup{Name: filepath.Base(path)}
	if err := testsNode.Decode(&group.Tests); err != nil {
		return nil, nil, fmt.Errorf("%s: decode tests: %w", path, err)
	}
	return group, &groupBacking{path: path, root: &root, testNodes: testsNode.Content}, nil
}

// Register binds the cmd name used in YAML to an in-process entry point that
// returns an exit code.
func (s *TestSuite) Register(cmd string, run func() int) {
	s.commands[cmd] = run
}

// Run executes every case as a subtest. With update, mismatches rewrite the
// expectations in the YAML files instead of failing.
func (s *TestSuite) Run(t *testing.T, update bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, group := range s.groups {
		t.Run(group.Name, func(t *testing.T) {
			for i := range group.Tests {
				name := group.Tests[i].Name
				if name == "" {
					name = fmt.Sprintf("Case-%d", i)
				}
				t.Run(name, func(t *testing.T) {
					s.runSingleTest(t, group, i, update)
				})
			}
		})
	}
}

func (s *TestSuite) runSingleTest(t *testing.T, group *TestGroup, idx int, update bool) {
	test := &group.Tests[idx]
	run, ok := s.commands[test.Cmd]
	if !ok {
		t.Fatalf("command %q not registered", test.Cmd)
	}

	res, err := capture(append([]string{test.Cmd}, test.Args...), test.Env, test.Stdin, run)
	if err != nil {
		t.Fatalf("run %s: %v", test.Cmd, err)
	}
	if res.panicked != nil {
		t.Errorf("panic: %v", res.panicked)
	}

	changes := s.applyExpect(t, group, idx, res, update)
	if update && len(changes) > 0 {
		backing := s.backings[group]
		if err := backing.persist(); err != nil {
			t.Fatalf("persist %s: %v", backing.path, err)
		}
		t.Logf("cmdtest: updated %s: %s", backing.path, strings.Join(changes, "; "))
	}
}

func (s *TestSuite) applyExpect(t *testing.T, group *TestGroup, idx int, res result, update bool) []string {
	test := &group.Tests[idx]
	expectNode := ensureMapValue(s.backings[group].testNodes[idx], "expect")

	var changes []string
	if res.exitCode != test.Expect.ExitCode {
		if update {
			test.Expect.ExitCode = res.exitCode
			setIntScalar(ensureMapValue(expectNode, "exitCode"), res.exitCode)
			changes = append(changes, fmt.Sprintf("exitCode=%d", res.exitCode))
		} else {
			t.Errorf("exit code mismatch:\nexpected: %d\nactual:   %d", test.Expect.ExitCode, res.exitCode)
		}
	}
	for _, stream := range []struct {
		key  string
		want *string
		got  string
	}{
		{"stdout", &test.Expect.Stdout, res.stdout},
		{"stderr", &test.Expect.Stderr, res.stderr},
	} {
		if stream.got == *stream.want {
			continue
		}
		if update {
			*stream.want = stream.got
			setStringScalar(ensureMapValue(expectNode, stream.key), stream.got)
			changes = append(changes, fmt.Sprintf("%s=%q", stream.key, summarizeValue(stream.got)))
		} else {
			t.Errorf("%s mismatch:\nexpected:\n%s\nactual:\n%s", stream.key, *stream.want, stream.got)
		}
	}
	return changes
}

func (b *groupBacking) persist() error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(b.root.Content[0]); err != nil {
		enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return os.WriteFile(b.path, buf.Bytes(), 0o644)
}
