package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/subscription-manager/internal/console/router"
)

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func newRouter(calls *[]string) *router.Router {
	r := router.New()
	r.HandleFunc("list", func(_ context.Context, w io.Writer, arg string) {
		*calls = append(*calls, "list:"+arg)
		_, _ = io.WriteString(w, "listed\n")
	})
	return r
}

func TestConsole_Run(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantCalls []string
		wantOut   []string
	}{
		{
			name:      "stops on EOF",
			input:     "list\nlist S0001\n",
			wantCalls: []string{"list:", "list:S0001"},
			wantOut:   []string{"listed\nlisted\n"},
		},
		{
			name:      "stops on quit",
			input:     "list\nquit\nlist\n",
			wantCalls: []string{"list:"},
		},
		{
			name:      "exit is an alias",
			input:     "EXIT\nlist\n",
			wantCalls: nil,
		},
		{
			name:    "help prints usage",
			input:   "help\n",
			wantOut: []string{"search <түлхүүр үг>", "quit, exit"},
		},
		{
			name:    "unknown command",
			input:   "drop all\n",
			wantOut: []string{`Алдаа: үл мэдэгдэх команд "drop"`},
		},
		{
			name:  "empty lines are skipped",
			input: "\n   \n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []string
			var out bytes.Buffer

			c := New(newRouter(&calls), strings.NewReader(tt.input), &out, "", newNoopLogger())
			require.NoError(t, c.Run(context.Background()))

			assert.Equal(t, tt.wantCalls, calls)
			for _, want := range tt.wantOut {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func TestConsole_Prompt(t *testing.T) {
	var calls []string
	var out bytes.Buffer

	c := New(newRouter(&calls), strings.NewReader("list\n"), &out, "> ", newNoopLogger())
	require.NoError(t, c.Run(context.Background()))

	assert.Equal(t, "> listed\n> ", out.String())
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestConsole_ReadError(t *testing.T) {
	var calls []string
	c := New(newRouter(&calls), errReader{}, io.Discard, "", newNoopLogger())

	err := c.Run(context.Background())
	assert.ErrorContains(t, err, "broken pipe")
}

func TestConsole_ContextCanceled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	var calls []string
	c := New(newRouter(&calls), pr, io.Discard, "", newNoopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("console did not stop after cancel")
	}
}
