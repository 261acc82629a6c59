package reversi

import "github.com/rocketscienceinc/reversi-backend/internal/entity"

// changeLog - scratch state of the turn being built plus the undo history.
type changeLog struct {
	pending    []entity.Position
	flipPlayer bool
	history    []entity.ChangeSet
}

func (that *changeLog) push(positions ...entity.Position) {
	that.pending = append(that.pending, positions...)
}

// togglePlayer is a toggle rather than a set so repeated pushes compose.
func (that *changeLog) togglePlayer() {
	that.flipPlayer = !that.flipPlayer
}

// discard - drops uncommitted changes, the history is kept.
func (that *changeLog) discard() {
	that.pending = that.pending[:0]
	that.flipPlayer = false
}

func (that *changeLog) record(undo entity.ChangeSet) {
	that.history = append(that.history, undo)
}

func (that *changeLog) pop() (entity.ChangeSet, bool) {
	if len(that.history) == 0 {
		return entity.ChangeSet{}, false
	}

	last := that.history[len(that.history)-1]
	that.history[len(that.history)-1] = entity.ChangeSet{}
	that.history = that.history[:len(that.history)-1]

	return last, true
}

func (that *changeLog) reset() {
	that.discard()
	that.history = nil
}
