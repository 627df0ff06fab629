package draws

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"lotto-mcp/internal/lottery"

	"github.com/rs/zerolog/log"
)

// Store keeps draws in memory, partitioned by game and kept in chronological
// order. It is safe for concurrent use and implements Provider.
type Store struct {
	mu    sync.RWMutex
	draws map[lottery.Type][]Draw
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		draws: make(map[lottery.Type][]Draw),
	}
}

// Append adds draws to their game partition, skipping IDs already present.
// It returns how many draws were new.
func (s *Store) Append(list []Draw) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	byType := make(map[lottery.Type][]Draw)
	for _, d := range list {
		byType[d.LottoType] = append(byType[d.LottoType], d)
	}

	added := 0
	for lt, incoming := range byType {
		current := s.draws[lt]
		existing := make(map[string]bool, len(current))
		for _, d := range current {
			existing[d.ID] = true
		}

		newCount := 0
		for _, d := range incoming {
			if existing[d.ID] {
				continue
			}
			existing[d.ID] = true
			current = append(current, d)
			newCount++
		}
		if newCount == 0 {
			continue
		}

		SortChronological(current)
		s.draws[lt] = current
		added += newCount
	}
	return added
}

// Len returns the number of stored draws of a game.
func (s *Store) Len(lt lottery.Type) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.draws[lt])
}

// Types lists the games that hold at least one draw.
func (s *Store) Types() []lottery.Type {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []lottery.Type
	for lt, list := range s.draws {
		if len(list) > 0 {
			out = append(out, lt)
		}
	}
	return out
}

// FindPeriod returns a copy of the draws inside the window, oldest first.
func (s *Store) FindPeriod(ctx context.Context, q Query) ([]Draw, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []Draw
	for _, d := range s.draws[q.LottoType] {
		if q.includes(d) {
			result = append(result, d)
		}
	}
	if q.Limit > 0 && len(result) > q.Limit {
		result = result[len(result)-q.Limit:]
	}
	return result, nil
}

// Count returns the size of the window regardless of q.Limit.
func (s *Store) Count(ctx context.Context, q Query) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, d := range s.draws[q.LottoType] {
		if q.includes(d) {
			n++
		}
	}
	return n, nil
}

func partitionPath(dir string, lt lottery.Type) string {
	return filepath.Join(dir, fmt.Sprintf("%s.jsonl", lt))
}

// Load reads the JSONL file of a game from dir. A missing file is not an error.
func (s *Store) Load(dir string, lt lottery.Type) error {
	path := partitionPath(dir, lt)
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open draw file: %w", err)
	}
	defer file.Close()

	var list []Draw
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		var d Draw
		if err := json.Unmarshal(scanner.Bytes(), &d); err != nil {
			log.Warn().Err(err).Str("lotto", string(lt)).Msg("Skipping invalid JSON line in draw file")
			continue
		}
		if d.LottoType == "" {
			d.LottoType = lt
		}
		list = append(list, d)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading draw file: %w", err)
	}

	added := s.Append(list)
	log.Info().Str("lotto", string(lt)).Int("count", added).Msg("Loaded draws from file")
	return nil
}

// LoadAll loads the file of every registered game found in dir.
func (s *Store) LoadAll(dir string) error {
	for _, lt := range lottery.Types() {
		if err := s.Load(dir, lt); err != nil {
			return fmt.Errorf("%s: %w", lt, err)
		}
	}
	return nil
}

// Save writes the draws of a game to dir as JSONL, replacing the previous
// file atomically.
func (s *Store) Save(dir string, lt lottery.Type) error {
	s.mu.RLock()
	data := slices.Clone(s.draws[lt])
	s.mu.RUnlock()

	if len(data) == 0 {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create draw directory: %w", err)
	}

	path := partitionPath(dir, lt)
	tmpPath := path + ".tmp"

	file, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create temp draw file: %w", err)
	}

	writer := bufio.NewWriter(file)
	encoder := json.NewEncoder(writer)

	for _, d := range data {
		if err := encoder.Encode(d); err != nil {
			file.Close()
			os.Remove(tmpPath)
			return fmt.Errorf("failed to encode draw: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to flush writer: %w", err)
	}

	if err := file.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename draw file: %w", err)
	}

	log.Info().Str("lotto", string(lt)).Int("count", len(data)).Msg("Draws saved")
	return nil
}
