// Package router сопоставляет строки консоли с обработчиками команд.
//
// Первое слово строки считается именем команды, остаток строки без ведущих пробелов передаётся
// обработчику как аргумент. Middleware оборачивают каждый обработчик в порядке
// регистрации.
package router

import (
	"context"
	"errors"
	"io"
	"slices"
	"strings"
)

var (
	// ErrUnknownCommand возвращается, если для команды нет обработчика.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrEmptyLine возвращается для пустой строки.
	ErrEmptyLine = errors.New("empty line")
)

// Handler обрабатывает одну команду консоли и пишет ответ в w.
type Handler interface {
	Serve(ctx context.Context, w io.Writer, arg string)
}

// HandlerFunc позволяет использовать обычную функцию как Handler.
type HandlerFunc func(ctx context.Context, w io.Writer, arg string)

// Serve вызывает f(ctx, w, arg).
func (f HandlerFunc) Serve(ctx context.Context, w io.Writer, arg string) {
	f(ctx, w, arg)
}

// Middleware оборачивает Handler.
type Middleware func(Handler) Handler

type ctxKey struct{}

// Command возвращает имя выполняемой команды из контекста.
func Command(ctx context.Context) string {
	cmd, _ := ctx.Value(ctxKey{}).(string)
	return cmd
}

// Router хранит обработчики команд.
type Router struct {
	handlers    map[string]Handler
	middlewares []Middleware
}

// New создаёт пустой Router.
func New() *Router {
	return &Router{handlers: make(map[string]Handler)}
}

// Use добавляет middleware. Middleware применяются ко всем командам,
// включая зарегистрированные ранее.
func (r *Router) Use(mws ...Middleware) {
	r.middlewares = append(r.middlewares, mws...)
}

// Handle регистрирует обработчик для одной или нескольких команд.
func (r *Router) Handle(h Handler, names ...string) {
	for _, name := range names {
		r.handlers[strings.ToLower(name)] = h
	}
}

// HandleFunc регистрирует функцию как обработчик команды.
func (r *Router) HandleFunc(name string, f func(ctx context.Context, w io.Writer, arg string)) {
	r.Handle(HandlerFunc(f), name)
}

// Commands возвращает имена зарегистрированных команд в алфавитном порядке.
func (r *Router) Commands() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Dispatch разбирает строку и вызывает обработчик команды.
func (r *Router) Dispatch(ctx context.Context, w io.Writer, line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return ErrEmptyLine
	}

	name, arg, _ := strings.Cut(line, " ")
	name = strings.ToLower(name)
	arg = strings.TrimSpace(arg)

	h, ok := r.handlers[name]
	if !ok {
		return ErrUnknownCommand
	}

	for i := len(r.middlewares) - 1; i >= 0; i-- {
		h = r.middlewares[i](h)
	}

	h.Serve(context.WithValue(ctx, ctxKey{}, name), w, arg)
	return nil
}
