package dialog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"salary-aggregation-service/internal/salaries/core/domain"
	"salary-aggregation-service/internal/salaries/core/usecase"
)

const (
	TextGreeting        = "Привет!\nКакую информацию нужно подготовить сегодня?"
	TextHelp            = "Чтобы продолжить, выберите пункт меню"
	TextSalaryMenu      = "Информация о зарплате"
	TextMenuPlaceholder = "Выберите пункт меню..."
	TextChooseGroupType = "Выберите тип группировки выплат"
	TextPromptStart     = "Введите начало периода в формате 2022-09-01T00:00:00"
	TextPromptEnd       = "Введите конец периода в формате 2022-09-01T00:00:00"
	TextInvalidRange    = "Конечная дата должна быть позже начальной"
	TextUnknownGroup    = "Неизвестный тип группировки, выберите одну из кнопок"

	textTimeRequired = "Требуется полный формат с указанием времени"
)

type State int

const (
	StateIdle State = iota
	StateAwaitingGranularity
	StateAwaitingStart
	StateAwaitingEnd
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingGranularity:
		return "awaiting_granularity"
	case StateAwaitingStart:
		return "awaiting_start"
	case StateAwaitingEnd:
		return "awaiting_end"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Keyboard tells the transport which markup to attach to a reply.
type Keyboard int

const (
	KeyboardNone Keyboard = iota
	KeyboardMainMenu
	KeyboardGroupTypes
)

type Reply struct {
	Text     string
	Keyboard Keyboard
}

type Aggregator interface {
	Execute(ctx context.Context, in usecase.AggregateInput) (*domain.AggregationResult, error)
}

// Conversation captures group type, start and end of one chat in that order,
// then runs the aggregation. It is not safe for concurrent use; the transport
// serializes updates per chat.
type Conversation struct {
	agg Aggregator

	state     State
	groupType domain.Granularity
	from      time.Time
}

func NewConversation(agg Aggregator) *Conversation {
	return &Conversation{agg: agg}
}

func (c *Conversation) State() State {
	return c.state
}

func (c *Conversation) Start() Reply {
	c.reset()
	return Reply{Text: TextGreeting, Keyboard: KeyboardMainMenu}
}

func (c *Conversation) Help() Reply {
	return Reply{Text: TextHelp}
}

func (c *Conversation) OpenSalaryMenu() Reply {
	c.reset()
	c.state = StateAwaitingGranularity
	return Reply{Text: TextChooseGroupType, Keyboard: KeyboardGroupTypes}
}

// SelectGranularity is accepted in every state: the inline keyboard stays in
// the chat history and can be pressed again at any time.
func (c *Conversation) SelectGranularity(value string) Reply {
	g, err := domain.ParseGranularity(value)
	if err != nil {
		return Reply{Text: TextUnknownGroup, Keyboard: KeyboardGroupTypes}
	}

	c.groupType = g
	c.from = time.Time{}
	c.state = StateAwaitingStart
	return Reply{Text: TextPromptStart}
}

func (c *Conversation) HandleText(ctx context.Context, text string) Reply {
	switch c.state {
	case StateAwaitingStart:
		return c.handleStart(text)
	case StateAwaitingEnd:
		return c.handleEnd(ctx, text)
	default:
		if strings.TrimSpace(text) == TextSalaryMenu {
			return c.OpenSalaryMenu()
		}
		return c.Help()
	}
}

func (c *Conversation) handleStart(text string) Reply {
	from, err := ParseInput(text)
	if err != nil {
		return Reply{Text: err.Error()}
	}

	c.from = from
	c.state = StateAwaitingEnd
	return Reply{Text: TextPromptEnd}
}

func (c *Conversation) handleEnd(ctx context.Context, text string) Reply {
	upto, err := ParseInput(text)
	if err != nil {
		return Reply{Text: err.Error()}
	}

	if !upto.After(c.from) {
		return Reply{Text: TextInvalidRange}
	}

	res, err := c.agg.Execute(ctx, usecase.AggregateInput{
		From:      c.from,
		To:        upto,
		GroupType: string(c.groupType),
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidRange) {
			return Reply{Text: TextInvalidRange}
		}
		return Reply{Text: err.Error()}
	}

	c.reset()
	return Reply{Text: RenderResult(res)}
}

func (c *Conversation) reset() {
	c.state = StateIdle
	c.groupType = ""
	c.from = time.Time{}
}

// InputError is shown to the user verbatim.
type InputError struct {
	Err error
}

func (e *InputError) Error() string {
	reason := e.Err.Error()
	if errors.Is(e.Err, domain.ErrTimeRequired) {
		reason = textTimeRequired
	}
	return "Неверный формат даты. Ожидается: ГГГГ-MM-ДДTЧЧ:MM:СС. Ошибка: " + reason
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// ParseInput validates one typed date-time: ISO-8601 with a literal T.
func ParseInput(text string) (time.Time, error) {
	t, err := domain.ParseDateTime(text)
	if err != nil {
		return time.Time{}, &InputError{Err: err}
	}
	return t, nil
}

// RenderResult formats a result as two plain-text lines.
func RenderResult(res *domain.AggregationResult) string {
	values := make([]string, len(res.Dataset))
	for i, d := range res.Dataset {
		values[i] = d.String()
	}

	labels := make([]string, len(res.Labels))
	for i, l := range res.Labels {
		labels[i] = "'" + l + "'"
	}

	return fmt.Sprintf("Данные: [%s]\nМетки: [%s]", strings.Join(values, ", "), strings.Join(labels, ", "))
}
