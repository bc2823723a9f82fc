package cmd

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func TestMain(m *testing.M) {
	if os.Getenv("DEBUG_TESTS") == "" {
		logrus.SetLevel(logrus.WarnLevel)
	} else {
		logrus.SetLevel(logrus.DebugLevel)
	}
	os.Exit(m.Run())
}

// resetFlags restores every flag of c to its default and clears Changed,
// since commands and their flag variables are package-level.
func resetFlags(t *testing.T, c *cobra.Command) {
	t.Helper()
	c.Flags().VisitAll(func(f *pflag.Flag) {
		if err := f.Value.Set(f.DefValue); err != nil {
			t.Fatalf("resetting --%s: %v", f.Name, err)
		}
		f.Changed = false
	})
}

// setFlags resets c and applies name/value pairs as if typed on the command line.
func setFlags(t *testing.T, c *cobra.Command, kv ...string) {
	t.Helper()
	resetFlags(t, c)
	for i := 0; i+1 < len(kv); i += 2 {
		if err := c.Flags().Set(kv[i], kv[i+1]); err != nil {
			t.Fatalf("setting --%s=%s: %v", kv[i], kv[i+1], err)
		}
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := t.TempDir() + string(os.PathSeparator) + name
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

const twoJobsCSV = "process_number,arrival_time,burst_time,priority\n1,0,5,1\n2,1,3,2\n"
