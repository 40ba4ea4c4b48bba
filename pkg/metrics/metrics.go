package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	NotesCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "quillbox", Name: "notes_created_total", Help: "Number of notes created."},
	)
	NotesTrashed = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "quillbox", Name: "notes_trashed_total", Help: "Number of notes moved to the trash."},
	)
	NotesRestored = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "quillbox", Name: "notes_restored_total", Help: "Number of notes restored from the trash."},
	)
	NotesPurged = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "quillbox", Name: "notes_purged_total", Help: "Number of notes permanently deleted."},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(NotesCreated, NotesTrashed, NotesRestored, NotesPurged)
}
