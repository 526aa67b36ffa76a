// Package command разбирает команды бота из текста комментариев.
package command

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"fcp-bot-service/internal/domain"
)

// DefaultMention - упоминание бота по умолчанию.
const DefaultMention = "@rfcbot"

// Parser разбирает команды, адресованные конкретному упоминанию.
type Parser struct {
	mention string
}

// NewParser создает Parser. Пустое упоминание заменяется на DefaultMention.
func NewParser(mention string) *Parser {
	if mention == "" {
		mention = DefaultMention
	}
	return &Parser{mention: mention}
}

// Mention возвращает упоминание, на которое реагирует парсер.
func (p *Parser) Mention() string {
	return p.mention
}

// Parse превращает текст комментария в команду. Не обращается к хранилищу.
func (p *Parser) Parse(body string) (domain.Command, error) {
	if !strings.HasPrefix(body, p.mention) {
		return domain.Command{}, domain.ErrNotAddressed
	}

	rest := body[len(p.mention):]

	// "@rfcbotx" - это упоминание другого пользователя
	if r, _ := utf8.DecodeRuneInString(rest); rest != "" && r != ':' && !unicode.IsSpace(r) {
		return domain.Command{}, domain.ErrNotAddressed
	}

	rest = strings.TrimSpace(rest)
	rest = strings.TrimPrefix(rest, ":")
	rest = strings.TrimSpace(rest)

	tokens := strings.Fields(rest)
	if len(tokens) == 0 {
		return domain.Command{}, fmt.Errorf("%w: no invocation", domain.ErrUnknownCommand)
	}

	invocation := tokens[0]
	firstLine, _, _ := strings.Cut(rest, "\n")

	switch invocation {
	case "fcp":
		if len(tokens) < 2 {
			return domain.Command{}, fmt.Errorf("%w: fcp without subcommand", domain.ErrUnknownCommand)
		}
		if tokens[1] == "cancel" {
			return domain.FcpCancel(), nil
		}
		disposition, ok := domain.ParseDisposition(tokens[1])
		if !ok {
			return domain.Command{}, fmt.Errorf("%w: fcp %s", domain.ErrUnknownCommand, tokens[1])
		}
		return domain.FcpPropose(disposition), nil

	case "reviewed":
		return domain.Reviewed(), nil

	case "concern", "resolved":
		name := strings.TrimSpace(strings.TrimPrefix(firstLine, invocation))
		if name == "" {
			return domain.Command{}, fmt.Errorf("%w: %s without a name", domain.ErrMalformedArgument, invocation)
		}
		if invocation == "concern" {
			return domain.NewConcern(name), nil
		}
		return domain.ResolveConcern(name), nil

	case "f?":
		if len(tokens) < 2 || !strings.HasPrefix(tokens[1], "@") {
			return domain.Command{}, fmt.Errorf("%w: f? expects @login", domain.ErrMalformedArgument)
		}
		login := strings.TrimPrefix(tokens[1], "@")
		if login == "" {
			return domain.Command{}, fmt.Errorf("%w: empty login", domain.ErrMalformedArgument)
		}
		return domain.FeedbackRequestFor(login), nil
	}

	return domain.Command{}, fmt.Errorf("%w: %s", domain.ErrUnknownCommand, invocation)
}
