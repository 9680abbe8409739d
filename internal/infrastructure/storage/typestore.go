package storage

import (
	"encoding/json"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"

	"strategos-server/pkg/gamedata"
)

// Ключи шаблонов хранятся с префиксом, чтобы в той же базе
// можно было держать и другие данные.
const typeKeyPrefix = "unittype:"

// TypeStore хранит шаблоны типов юнитов в LevelDB в виде JSON.
type TypeStore struct {
	db *leveldb.DB
}

func NewTypeStore(path string) (*TypeStore, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open type store at %s: %w", path, err)
	}
	return &TypeStore{db: db}, nil
}

func (s *TypeStore) Close() error {
	return s.db.Close()
}

func (s *TypeStore) Put(t gamedata.UnitTypeTemplate) error {
	if t.Name == "" {
		return fmt.Errorf("template has no name")
	}
	b, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to encode template %s: %w", t.Name, err)
	}
	return s.db.Put([]byte(typeKeyPrefix+t.Name), b, nil)
}

func (s *TypeStore) Get(name string) (gamedata.UnitTypeTemplate, error) {
	var t gamedata.UnitTypeTemplate

	b, err := s.db.Get([]byte(typeKeyPrefix+name), nil)
	if err != nil {
		return t, fmt.Errorf("template %s: %w", name, err)
	}
	if err := json.Unmarshal(b, &t); err != nil {
		return t, fmt.Errorf("failed to decode template %s: %w", name, err)
	}
	return t, nil
}

func (s *TypeStore) Delete(name string) error {
	return s.db.Delete([]byte(typeKeyPrefix+name), nil)
}

// List возвращает все сохраненные шаблоны.
func (s *TypeStore) List() ([]gamedata.UnitTypeTemplate, error) {
	var out []gamedata.UnitTypeTemplate

	iter := s.db.NewIterator(util.BytesPrefix([]byte(typeKeyPrefix)), nil)
	defer iter.Release()

	for iter.Next() {
		var t gamedata.UnitTypeTemplate
		if err := json.Unmarshal(iter.Value(), &t); err != nil {
			return nil, fmt.Errorf("failed to decode key %s: %w", iter.Key(), err)
		}
		out = append(out, t)
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("type store iteration failed: %w", err)
	}
	return out, nil
}

// Seed записывает набор шаблонов, не трогая уже существующие записи.
func (s *TypeStore) Seed(templates []gamedata.UnitTypeTemplate) (int, error) {
	written := 0
	for _, t := range templates {
		ok, err := s.db.Has([]byte(typeKeyPrefix+t.Name), nil)
		if err != nil {
			return written, err
		}
		if ok {
			continue
		}
		if err := s.Put(t); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}
