package assignmentstore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssignmentStore(t *testing.T) {
	t.Run(`replace orders stages as passed`, func(t *testing.T) {
		store := NewInstance()
		store.Replace("batch-1", []string{"tpl-2", "tpl-1", "tpl-3"})

		list := store.ListByBatch("batch-1")
		require.Equal(t, 3, len(list))
		require.Equal(t, "tpl-2", list[0].StageID)
		require.Equal(t, 1, list[0].Order)
		require.Equal(t, "tpl-3", list[2].StageID)
		require.Equal(t, 3, list[2].Order)
	})

	t.Run(`replace overwrites the previous set`, func(t *testing.T) {
		store := NewInstance()
		store.Replace("batch-1", []string{"tpl-1", "tpl-2"})
		store.Replace("batch-1", []string{"tpl-3"})

		list := store.ListByBatch("batch-1")
		require.Equal(t, 1, len(list))
		require.Equal(t, "tpl-3", list[0].StageID)
	})

	t.Run(`remove renumbers the remainder`, func(t *testing.T) {
		store := NewInstance()
		store.Replace("batch-1", []string{"tpl-1", "tpl-2", "tpl-3"})
		store.Remove("batch-1", "tpl-2")

		list := store.ListByBatch("batch-1")
		require.Equal(t, 2, len(list))
		require.Equal(t, "tpl-1", list[0].StageID)
		require.Equal(t, 1, list[0].Order)
		require.Equal(t, "tpl-3", list[1].StageID)
		require.Equal(t, 2, list[1].Order)
	})

	t.Run(`batches are isolated from each other`, func(t *testing.T) {
		store := NewInstance()
		store.Replace("batch-1", []string{"tpl-1"})
		store.Replace("batch-2", []string{"tpl-2"})
		store.DropBatch("batch-1")

		require.Equal(t, 0, len(store.ListByBatch("batch-1")))
		list := store.ListByBatch("batch-2")
		require.Equal(t, 1, len(list))
		require.Equal(t, "tpl-2", list[0].StageID)
	})

	t.Run(`listing a copy keeps the store immutable`, func(t *testing.T) {
		store := NewInstance()
		store.Replace("batch-1", []string{"tpl-1", "tpl-2"})
		list := store.ListByBatch("batch-1")
		list[0].StageID = "mutated"

		fresh := store.ListByBatch("batch-1")
		require.Equal(t, "tpl-1", fresh[0].StageID)
	})
}
