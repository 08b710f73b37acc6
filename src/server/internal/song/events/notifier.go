package songevents

import (
	"context"
	"github.com/apex/log"
	"github.com/veedubyou/song-catalog/src/shared/lib/cerr"
	"github.com/veedubyou/song-catalog/src/shared/lib/rabbitmq"
	"github.com/veedubyou/song-catalog/src/shared/song/entity"
)

const (
	SongCreatedType = "song_created"
	SongDeletedType = "song_deleted"
)

type SongCreatedMessage struct {
	Song songentity.Song `json:"song"`
}

type SongDeletedMessage struct {
	SongID string `json:"song_id"`
}

var _ Notifier = QueueNotifier{}
var _ Notifier = NopNotifier{}

// Notifier announces changes that are already committed, so it can't fail
// the request that caused them
type Notifier interface {
	SongCreated(ctx context.Context, song songentity.Song)
	SongDeleted(ctx context.Context, songID string)
}

type QueueNotifier struct {
	publisher rabbitmq.Publisher
}

func NewQueueNotifier(publisher rabbitmq.Publisher) QueueNotifier {
	return QueueNotifier{
		publisher: publisher,
	}
}

func (q QueueNotifier) SongCreated(ctx context.Context, song songentity.Song) {
	q.publish(ctx, SongCreatedType, song.ID, SongCreatedMessage{Song: song})
}

func (q QueueNotifier) SongDeleted(ctx context.Context, songID string) {
	q.publish(ctx, SongDeletedType, songID, SongDeletedMessage{SongID: songID})
}

func (q QueueNotifier) publish(ctx context.Context, msgType string, songID string, payload any) {
	err := rabbitmq.PublishJSON(ctx, q.publisher, msgType, payload)
	if err != nil {
		cerr.Log(cerr.Field("type", msgType).
			Field("song_id", songID).
			Wrap(err).
			Error("Failed to publish song event"))
		return
	}

	log.WithFields(log.Fields{
		"type":    msgType,
		"song_id": songID,
	}).Debug("Published song event")
}

type NopNotifier struct{}

func (NopNotifier) SongCreated(context.Context, songentity.Song) {}
func (NopNotifier) SongDeleted(context.Context, string)         {}
