package draws

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"lotto-mcp/internal/lottery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(n int) time.Time {
	return time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func mkDraw(id string, d int, numbers ...int) Draw {
	return Draw{
		ID:        id,
		LottoType: lottery.Eurojackpot,
		DrawDate:  day(d),
		DrawLabel: "Draw " + id,
		Results:   []Result{{Numbers: numbers, SecondaryNumbers: []int{1, 2}}},
	}
}

func TestDraw_ContainsAndFilter(t *testing.T) {
	one, two := 1, 2
	d := Draw{
		ID: "j1",
		Results: []Result{
			{WinClass: &one, Numbers: []int{4}},
			{WinClass: &two, Numbers: []int{7}},
		},
	}

	assert.True(t, d.Contains(7, Filter{}))
	assert.False(t, d.Contains(7, Filter{Position: &one}))
	assert.True(t, d.Contains(7, Filter{Position: &two}))
	assert.False(t, d.Contains(7, Filter{UseSecondary: true}))
	assert.Equal(t, []int{4, 7}, d.Numbers(Filter{}))

	occ := NewOccurrence(d, 7)
	require.NotNil(t, occ.Position)
	assert.Equal(t, 2, *occ.Position)
	assert.Equal(t, []int{4, 7}, occ.AllNumbers)
	assert.Nil(t, occ.SecondaryNumbers)
}

func TestStore_FindPeriodAndLimit(t *testing.T) {
	s := NewStore()
	added := s.Append([]Draw{
		mkDraw("c", 2, 1, 2, 3, 4, 5),
		mkDraw("a", 0, 6, 7, 8, 9, 10),
		mkDraw("b", 1, 1, 7, 20, 30, 40),
		mkDraw("a", 0, 6, 7, 8, 9, 10),
	})
	assert.Equal(t, 3, added)
	assert.Equal(t, 3, s.Len(lottery.Eurojackpot))

	ctx := context.Background()
	q := Query{LottoType: lottery.Eurojackpot, From: day(0), To: day(2)}

	all, err := s.FindPeriod(ctx, q)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, "c", all[2].ID)

	q.Limit = 2
	limited, err := s.FindPeriod(ctx, q)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "b", limited[0].ID, "limit keeps the most recent draws")

	count, err := s.Count(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, 3, count, "count ignores the limit")
}

func TestStore_Persistence(t *testing.T) {
	dir := t.TempDir()

	s1 := NewStore()
	s1.Append([]Draw{mkDraw("a", 0, 1, 2, 3, 4, 5), mkDraw("b", 3, 5, 6, 7, 8, 9)})
	require.NoError(t, s1.Save(dir, lottery.Eurojackpot))

	_, err := os.Stat(filepath.Join(dir, "EUROJACKPOT.jsonl"))
	require.NoError(t, err)

	s2 := NewStore()
	require.NoError(t, s2.LoadAll(dir))
	assert.Equal(t, 2, s2.Len(lottery.Eurojackpot))

	// Re-loading the same file must not duplicate draws.
	require.NoError(t, s2.Load(dir, lottery.Eurojackpot))
	assert.Equal(t, 2, s2.Len(lottery.Eurojackpot))

	got, err := s2.FindPeriod(context.Background(), Query{LottoType: lottery.Eurojackpot, From: day(-1)})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[1].DrawDate.Equal(day(3)))
	assert.Equal(t, []int{5, 6, 7, 8, 9}, got[1].Results[0].Numbers)
}

func TestStore_LoadMissingFile(t *testing.T) {
	s := NewStore()
	assert.NoError(t, s.Load(t.TempDir(), lottery.EstKeno))
	assert.Equal(t, 0, s.Len(lottery.EstKeno))
}

func TestImportCSV(t *testing.T) {
	input := strings.Join([]string{
		"id,date,label,win_class,numbers,secondary",
		"d2,2024-01-09,Draw 2,,3 14 25 36 47,5-9",
		"d1,2024-01-02,Draw 1,,1,2,3,4,5,",
		",2024-01-16,Draw 3,1,7,",
		",2024-01-16,Draw 3,2,4,",
		"bad,not-a-date,Draw X,,1 2 3,",
	}, "\n")

	list, err := ImportCSV(strings.NewReader(input), lottery.Eurojackpot)
	require.NoError(t, err)
	require.Len(t, list, 3)

	assert.Equal(t, "d1", list[0].ID)
	assert.Equal(t, []int{1}, list[0].Results[0].Numbers, "unquoted commas split the record")
	assert.Equal(t, "d2", list[1].ID)
	assert.Equal(t, []int{3, 14, 25, 36, 47}, list[1].Results[0].Numbers)
	assert.Equal(t, []int{5, 9}, list[1].Results[0].SecondaryNumbers)

	merged := list[2]
	assert.NotEmpty(t, merged.ID, "missing ids are generated")
	require.Len(t, merged.Results, 2)
	require.NotNil(t, merged.Results[1].WinClass)
	assert.Equal(t, 2, *merged.Results[1].WinClass)
}

func TestImportCSV_StableGeneratedIDs(t *testing.T) {
	input := "date,label,numbers\n2024-01-16,Draw 3,1 2 3 4 5\n"

	first, err := ImportCSV(strings.NewReader(input), lottery.Eurojackpot)
	require.NoError(t, err)
	second, err := ImportCSV(strings.NewReader(input), lottery.Eurojackpot)
	require.NoError(t, err)
	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].ID, second[0].ID)

	s := NewStore()
	assert.Equal(t, 1, s.Append(first))
	assert.Equal(t, 0, s.Append(second), "re-import adds nothing")
}

func TestImportCSV_MissingColumn(t *testing.T) {
	_, err := ImportCSV(strings.NewReader("id,label\nx,y\n"), lottery.EstKeno)
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestFrequencyTable(t *testing.T) {
	list := []Draw{
		mkDraw("a", 0, 1, 2, 3, 4, 5),
		mkDraw("b", 1, 1, 2, 6, 7, 8),
		mkDraw("c", 2, 1, 9, 10, 11, 99),
		mkDraw("d", 3, 20, 21, 22, 23, 24),
	}
	ft := NewFrequencyTable(list, lottery.Range{Min: 1, Max: 50}, Filter{})

	assert.Equal(t, 4, ft.Total)
	assert.Equal(t, 3, ft.Count(1))
	assert.Equal(t, 0, ft.Count(99), "out of range numbers are ignored")
	assert.InDelta(t, 0.75, ft.Frequency(1), 1e-9)
	assert.Len(t, ft.Frequencies(), 50)

	values := ft.Values()
	assert.Len(t, values, 50)
	assert.InDelta(t, 0.75, values[len(values)-1], 1e-9)
	assert.Equal(t, 0.0, values[0])

	seq := Appearances(list, 1, Filter{})
	assert.Equal(t, []bool{true, true, true, false}, seq)

	timeline := BuildTimeline(list, seq)
	require.Len(t, timeline, 4)
	assert.False(t, timeline[3].Appeared)
	assert.Equal(t, "Draw d", timeline[3].DrawLabel)
}

func TestStore_SaveWhileAppending(t *testing.T) {
	dir := t.TempDir()
	s := NewStore()
	s.Append([]Draw{mkDraw("seed", 50, 1, 2, 3, 4, 5)})

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			// Older dates force a re-sort of the existing draws.
			s.Append([]Draw{mkDraw(fmt.Sprintf("d%02d", i), 49-i, 1, 2, 3, 4, 5)})
		}
	}()
	for i := 0; i < 20; i++ {
		require.NoError(t, s.Save(dir, lottery.Eurojackpot))
	}
	<-done

	require.NoError(t, s.Save(dir, lottery.Eurojackpot))
	loaded := NewStore()
	require.NoError(t, loaded.LoadAll(dir))
	assert.Equal(t, 51, loaded.Len(lottery.Eurojackpot))
}
