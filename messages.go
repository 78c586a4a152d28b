package ttt

func MessageType[E any]() AddMessageType {
	return newMessage[E]{}
}

type AddMessageType interface {
	configureMessageIn(app *App)
}

type newMessage[E any] struct{}

func (newMessage[E]) configureMessageIn(app *App) {
	if _, exists := ResourceOf[Messages[E]](app.World()); exists {
		return
	}

	app.InsertResource(Messages[E]{})
	app.AddSystems(Last, updateMessagesSystem[E])
}

func updateMessagesSystem[E any](world *World) {
	MustResourceOf[Messages[E]](world).Update()
}

type MessageId int

type MessageWithId[M any] struct {
	Id      MessageId
	Message M
}

// Messages is a double buffered queue of messages. A message stays readable
// for the frame it was written in and the following frame.
type Messages[E any] struct {
	_ noCopy

	prevId MessageId
	curr   []MessageWithId[E]
	prev   []MessageWithId[E]
}

func (e *Messages[E]) AppendTo(target []MessageWithId[E]) []MessageWithId[E] {
	target = append(target, e.prev...)
	target = append(target, e.curr...)
	return target
}

func (e *Messages[E]) Send(message E) {
	e.prevId += 1

	e.curr = append(e.curr, MessageWithId[E]{
		Id:      e.prevId,
		Message: message,
	})
}

func (e *Messages[E]) Update() {
	e.curr, e.prev = e.prev, e.curr

	// reuse the memory of the current buffer
	clear(e.curr)
	e.curr = e.curr[:0]
}

func (e *Messages[E]) Reader() *MessageReader[E] {
	return &MessageReader[E]{messages: e}
}

// WriteMessage sends a message of type E. Panics if E was not registered.
func WriteMessage[E any](world *World, message E) {
	MustResourceOf[Messages[E]](world).Send(message)
}

type MessageReader[E any] struct {
	_ noCopy

	messages *Messages[E]
	lastId   MessageId

	scratch       []E
	scratchWithId []MessageWithId[E]
}

// Read returns all messages that were not yet seen by this reader.
// The returned slice is only valid until the next call to Read.
func (r *MessageReader[E]) Read() []E {
	r.scratchWithId = r.messages.AppendTo(r.scratchWithId[:0])

	buffer := r.scratchWithId

	// limit buffer to only the messages we've not yet read
	for len(buffer) > 0 {
		if buffer[0].Id > r.lastId {
			break
		}

		buffer = buffer[1:]
	}

	if len(buffer) > 0 {
		// store the last id we've seen
		r.lastId = buffer[len(buffer)-1].Id
	}

	// convert to message slice, reuse scratch buffer
	messages := r.scratch[:0]
	for _, message := range buffer {
		messages = append(messages, message.Message)
	}

	// keep scratch buffer for reuse
	r.scratch = messages

	return messages
}
