package assistant

import (
	"assistant/pkg/domain"
	"assistant/pkg/serrors"
	"context"
	"strings"
)

func (a *assistant) routes() map[string]command {
	return map[string]command{
		"hello":         {usage: "hello", run: a.hello},
		"add":           {usage: "add <name> <phone>", run: a.addContact},
		"change":        {usage: "change <name> <old phone> <new phone>", run: a.changeContact},
		"phone":         {usage: "phone <name>", run: a.showPhones},
		"all":           {usage: "all", run: a.showAll},
		"add-birthday":  {usage: "add-birthday <name> <DD.MM.YYYY>", run: a.addBirthday},
		"show-birthday": {usage: "show-birthday <name>", run: a.showBirthday},
		"birthdays":     {usage: "birthdays", run: a.upcomingBirthdays},
		"remove-phone":  {usage: "remove-phone <name> <phone>", run: a.removePhone},
		"delete":        {usage: "delete <name>", run: a.deleteContact},
	}
}

func (a *assistant) hello(context.Context, []string) (string, error) {
	return "How can I help you?", nil
}

// addContact creates the contact if needed and appends the phone. The phone
// is validated first so a bad number never leaves an empty contact behind.
func (a *assistant) addContact(_ context.Context, args []string) (string, error) {
	if err := requireArgs(args, 2); err != nil {
		return "", err
	}
	name, phone := args[0], args[1]
	if _, err := domain.NewPhone(phone); err != nil {
		return "", err
	}

	message := "Contact updated."
	rec, ok := a.book.Find(name)
	if !ok {
		rec = domain.NewRecord(name)
		a.book.AddRecord(rec)
		message = "Contact added."
	}
	if err := rec.AddPhone(phone); err != nil {
		return "", err
	}

	return message, nil
}

func (a *assistant) changeContact(_ context.Context, args []string) (string, error) {
	if err := requireArgs(args, 3); err != nil {
		return "", err
	}
	rec, err := a.find(args[0])
	if err != nil {
		return "", err
	}
	if err := rec.EditPhone(args[1], args[2]); err != nil {
		return "", err
	}

	return "Contact updated.", nil
}

func (a *assistant) showPhones(_ context.Context, args []string) (string, error) {
	if err := requireArgs(args, 1); err != nil {
		return "", err
	}
	rec, err := a.find(args[0])
	if err != nil {
		return "", err
	}

	return "Phones for " + rec.Name + ": " + rec.PhoneList(), nil
}

func (a *assistant) showAll(context.Context, []string) (string, error) {
	records := a.book.Records()
	if len(records) == 0 {
		return "No contacts saved.", nil
	}

	lines := make([]string, len(records))
	for i, rec := range records {
		lines[i] = rec.String()
	}

	return strings.Join(lines, "\n"), nil
}

func (a *assistant) addBirthday(_ context.Context, args []string) (string, error) {
	if err := requireArgs(args, 2); err != nil {
		return "", err
	}
	rec, err := a.find(args[0])
	if err != nil {
		return "", err
	}
	if err := rec.AddBirthday(args[1]); err != nil {
		return "", err
	}

	return "Birthday added.", nil
}

func (a *assistant) showBirthday(_ context.Context, args []string) (string, error) {
	if err := requireArgs(args, 1); err != nil {
		return "", err
	}

	return a.book.ShowBirthday(args[0])
}

func (a *assistant) upcomingBirthdays(context.Context, []string) (string, error) {
	upcoming := a.book.UpcomingBirthdays(a.options.Now(), a.options.UpcomingDays)
	if len(upcoming) == 0 {
		return "No birthdays upcoming week.", nil
	}

	lines := make([]string, len(upcoming))
	for i, c := range upcoming {
		lines[i] = c.String()
	}

	return strings.Join(lines, "\n"), nil
}

func (a *assistant) removePhone(_ context.Context, args []string) (string, error) {
	if err := requireArgs(args, 2); err != nil {
		return "", err
	}
	rec, err := a.find(args[0])
	if err != nil {
		return "", err
	}
	if err := rec.RemovePhone(args[1]); err != nil {
		return "", err
	}

	return "Phone removed.", nil
}

func (a *assistant) deleteContact(_ context.Context, args []string) (string, error) {
	if err := requireArgs(args, 1); err != nil {
		return "", err
	}
	if err := a.book.Delete(args[0]); err != nil {
		return "", err
	}

	return "Contact deleted.", nil
}

func (a *assistant) find(name string) (*domain.Record, error) {
	rec, ok := a.book.Find(name)
	if !ok {
		return nil, serrors.With(serrors.ErrNotFound, "contact %s not found", name)
	}

	return rec, nil
}
