package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrAddInternalNoteCommandIsNotConstructed = errors.New(
		"AddInternalNoteCommand must be created via NewAddInternalNoteCommand constructor",
	)
	ErrNoteTextIsRequired = errors.New("note text is required")
)

// AddInternalNoteCommand appends one staff note to an order. Notes are
// append-only and carry their author and timestamp.
type AddInternalNoteCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	authorID kernel.UUID
	text     string

	guard guard.ConstructorGuard
}

// NewAddInternalNoteCommand creates a note command. The text must be
// non-empty.
func NewAddInternalNoteCommand(orderID, authorID kernel.UUID, text string) (AddInternalNoteCommand, error) {
	command := AddInternalNoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setAuthorID(authorID),
		command.setText(text),
	); err != nil {
		return AddInternalNoteCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddInternalNoteCommandIsNotConstructed if validation fails.
func (c AddInternalNoteCommand) Validate() error {
	return c.guard.Validate(ErrAddInternalNoteCommandIsNotConstructed)
}

// OrderID returns the order to annotate.
func (c AddInternalNoteCommand) OrderID() kernel.UUID {
	return c.orderID
}

// AuthorID returns the staff member writing the note.
func (c AddInternalNoteCommand) AuthorID() kernel.UUID {
	return c.authorID
}

// Text returns the note body.
func (c AddInternalNoteCommand) Text() string {
	return c.text
}

func (c *AddInternalNoteCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *AddInternalNoteCommand) setAuthorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.authorID = id
	return nil
}

func (c *AddInternalNoteCommand) setText(text string) error {
	if text == "" {
		return ErrNoteTextIsRequired
	}

	c.text = text
	return nil
}
