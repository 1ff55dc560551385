// Package console реализует построчный интерфейс менеджера подписок.
//
// Console читает команды из io.Reader, передаёт их в router.Router и пишет ответы
// в io.Writer. Работа завершается по EOF, командам quit/exit или отмене контекста.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/magabrotheeeer/subscription-manager/internal/console/response"
	"github.com/magabrotheeeer/subscription-manager/internal/console/router"
	"github.com/magabrotheeeer/subscription-manager/internal/lib/sl"
)

// Usage справка по командам.
const Usage = `Командууд:
  list                  бүх захиалгыг харуулах
  search <түлхүүр үг>   захиалга хайх
  show <дугаар>         нэг захиалгыг харуулах
  add <json>            шинэ захиалга нэмэх
  edit <дугаар> <json>  захиалга засах
  remove <дугаар>       захиалга устгах
  stats                 үйлдлийн тоолуур
  help                  тусламж
  quit, exit            гарах
JSON талбарууд: customer, phone, next_date (MM-DD-YYYY), recurring ($35.00), plan, status, kind`

var quitCommands = map[string]bool{"quit": true, "exit": true}

// Console связывает поток ввода с маршрутизатором команд.
type Console struct {
	router *router.Router
	in     io.Reader
	out    io.Writer
	prompt string
	log    *slog.Logger
}

// New создаёт Console.
func New(r *router.Router, in io.Reader, out io.Writer, prompt string, log *slog.Logger) *Console {
	return &Console{
		router: r,
		in:     in,
		out:    out,
		prompt: prompt,
		log:    log,
	}
}

// Run обрабатывает команды до EOF, quit/exit или отмены ctx.
// Отмена контекста не считается ошибкой.
func (c *Console) Run(ctx context.Context) error {
	const op = "console.Run"
	log := c.log.With(sl.Op(op))

	lines := make(chan string)
	errCh := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		errCh <- scanner.Err()
	}()

	for {
		c.writePrompt()

		select {
		case <-ctx.Done():
			log.Info("console stopped by context")
			return nil
		case line, ok := <-lines:
			if !ok {
				var err error
				select {
				case err = <-errCh:
				default:
				}
				if err != nil {
					log.Error("failed to read input", sl.Err(err))
					return fmt.Errorf("%s: %w", op, err)
				}
				log.Info("input closed")
				return nil
			}
			if c.handle(ctx, line) {
				log.Info("console stopped by command")
				return nil
			}
		}
	}
}

// handle выполняет одну строку и сообщает, нужно ли завершить работу.
func (c *Console) handle(ctx context.Context, line string) bool {
	name, _, _ := strings.Cut(strings.TrimSpace(line), " ")
	name = strings.ToLower(name)

	switch {
	case quitCommands[name]:
		return true
	case name == "help":
		fmt.Fprintln(c.out, Usage)
		return false
	}

	err := c.router.Dispatch(ctx, c.out, line)
	switch {
	case err == nil, errors.Is(err, router.ErrEmptyLine):
	case errors.Is(err, router.ErrUnknownCommand):
		c.log.Debug("unknown command", slog.String("command", name))
		_ = response.Write(c.out, response.Error(fmt.Sprintf("үл мэдэгдэх команд %q, help гэж оруулна уу", name)))
	default:
		c.log.Error("failed to dispatch command", sl.Err(err))
	}
	return false
}

func (c *Console) writePrompt() {
	if c.prompt != "" {
		fmt.Fprint(c.out, c.prompt)
	}
}
