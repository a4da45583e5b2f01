package notes

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/ribgsilva/notes/business/v1/note"
	"github.com/ribgsilva/notes/sys"
	"gocloud.dev/pubsub"
)

// Consume receives note events until ctx is done, handling at most maxWorkers at once.
// A maxWorkers below 1 is treated as 1.
// Every message is acked, including the ones that could not be applied.
func Consume(ctx context.Context, sub *pubsub.Subscription, maxWorkers int) error {
	logger := sys.R.Log
	if maxWorkers < 1 {
		logger.Warnf("max workers %d is below 1, using 1", maxWorkers)
		maxWorkers = 1
	}
	workers := make(chan int, maxWorkers)

	var err error
	for {
		var message *pubsub.Message
		message, err = sub.Receive(ctx)
		if err != nil {
			break
		}

		workers <- 1
		go func(m *pubsub.Message) {
			defer func() { <-workers }()
			defer m.Ack()

			logger.Infof("message received: %s", string(m.Body))
			var e note.Event
			if err := json.Unmarshal(m.Body, &e); err != nil {
				logger.Error("failed to parse body: ", err)
				return
			}

			switch e.Type {
			case "create":
				var c note.NewNote
				marshal, err := json.Marshal(e.Data)
				if err != nil {
					logger.Errorf("failed to encode create event %+v: err: %s", e.Data, err)
					return
				}
				if err := json.Unmarshal(marshal, &c); err != nil {
					logger.Errorf("failed to parse create event %+v: err: %s", e.Data, err)
					return
				}

				created, err := sys.R.Notes.Create(ctx, c)
				if err != nil {
					logger.Errorw("create event", "data", e.Data, "message", note.UserMessage(err), "ERROR", err)
					return
				}
				logger.Infow("create event", "id", created.Id)
			default:
				logger.Error("unknown event type: ", e.Type)
			}
		}(message)
	}

	for w := 0; w < maxWorkers; w++ {
		workers <- 1
	}

	if !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}
