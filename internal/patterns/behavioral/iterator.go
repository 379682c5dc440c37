package behavioral

import "patternlab/internal/domain"

// Iterator walks a playlist through an explicit cursor, emitting one line
// per track. The input arguments are the playlist; the default is the
// textbook three-track list.
func Iterator(in domain.Input) domain.Trace {
	tracks := in.Args
	if in.IsZero() {
		tracks = []string{"First", "Second", "Third"}
	}

	trace := domain.Trace{}
	for it := newPlaylistIterator(tracks); it.hasNext(); {
		trace = append(trace, "Playing: "+it.next())
	}
	return trace
}

type playlistIterator struct {
	tracks []string
	pos    int
}

func newPlaylistIterator(tracks []string) *playlistIterator {
	return &playlistIterator{tracks: tracks}
}

func (it *playlistIterator) hasNext() bool { return it.pos < len(it.tracks) }

func (it *playlistIterator) next() string {
	t := it.tracks[it.pos]
	it.pos++
	return t
}
