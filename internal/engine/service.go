package engine

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"strategos-server/internal/core/types"
	"strategos-server/internal/domain"
	"strategos-server/internal/network"
	"strategos-server/internal/systems"
	"strategos-server/pkg/api"
	"strategos-server/pkg/gamedata"
	"strategos-server/pkg/logger"
)

type handlerFunc func(s *GameService, cmd api.ClientCommand) error

// workUnitSeconds - сколько секунд работы выполняет одна команда
// GATHER, HEAL или BUILD. Непрерывные занятия клиент продлевает,
// повторяя команду.
const workUnitSeconds = 1.0

type GameService struct {
	cfg Config

	Units    *domain.UnitContainer
	Registry *gamedata.Registry

	// Players хранит все фракции партии по ID.
	Players map[int]*domain.Player

	Logs []api.LogEntry
	Tick int64

	CommandChan chan api.ClientCommand
	Hub         *network.Broadcaster

	handlers map[string]handlerFunc

	stop chan struct{}
	done chan struct{}
}

// NewService собирает движок партии из конфига и набора шаблонов типов.
func NewService(cfg Config, templates []gamedata.UnitTypeTemplate) (*GameService, error) {
	registry := gamedata.NewRegistry()
	if err := registry.Load(templates); err != nil {
		return nil, fmt.Errorf("failed to load unit templates: %w", err)
	}

	s := &GameService{
		cfg:         cfg,
		Units:       domain.NewUnitContainer(cfg.ShardID),
		Registry:    registry,
		Players:     make(map[int]*domain.Player),
		Logs:        []api.LogEntry{},
		CommandChan: make(chan api.ClientCommand, 100),
		Hub:         network.NewBroadcaster(),
		handlers:    make(map[string]handlerFunc),
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}

	s.registerHandlers()
	return s, nil
}

func (s *GameService) registerHandlers() {
	s.handlers["SPAWN"] = handleSpawn
	s.handlers["MOVE"] = handleMove
	s.handlers["ATTACK"] = handleAttack
	s.handlers["HEAL"] = handleHeal
	s.handlers["GATHER"] = handleGather
	s.handlers["DROPOFF"] = handleDropOff
	s.handlers["BUILD"] = handleBuild
	s.handlers["DESTROY"] = handleDestroy
}

// AddPlayer регистрирует фракцию и выдает ей стартовый запас ресурсов.
func (s *GameService) AddPlayer(id int, name string, stockpile domain.ResourceBundle) *domain.Player {
	p := &domain.Player{
		ID:        id,
		Name:      name,
		Color:     id,
		Stockpile: stockpile,
	}
	s.Players[id] = p
	return p
}

func (s *GameService) Start() {
	go s.RunGameLoop()
}

// Stop останавливает цикл симуляции и дожидается его завершения.
func (s *GameService) Stop() {
	close(s.stop)
	<-s.done
}

// ProcessCommand принимает команду от внешнего мира (WebSocket).
// Команда будет выполнена циклом симуляции между тиками.
func (s *GameService) ProcessCommand(cmd api.ClientCommand) {
	select {
	case s.CommandChan <- cmd:
	default:
		logger.Log.WithField("action", cmd.Action).Warn("Command queue full, dropping command")
	}
}

// --- GAME LOOP ---

// RunGameLoop крутит симуляцию с фиксированной частотой тиков.
// Все команды и вся мутация мира происходят в этой горутине,
// поэтому движку не нужны блокировки.
func (s *GameService) RunGameLoop() {
	defer close(s.done)

	interval := s.cfg.TickInterval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Log.WithFields(logrus.Fields{
		"seed":      s.cfg.Seed,
		"tick_rate": s.cfg.TickRate,
	}).Info("Game loop started")

	for {
		select {
		case <-s.stop:
			logger.Log.Info("Game loop stopped")
			return

		case cmd := <-s.CommandChan:
			s.executeCommand(cmd)

		case <-ticker.C:
			s.Tick++
			s.stepProjectiles(interval.Seconds())
			s.publishUpdate()
		}
	}
}

// stepProjectiles продвигает выпущенные снаряды и убирает долетевшие.
func (s *GameService) stepProjectiles(dt float64) {
	for _, u := range s.Units.All() {
		attr, ok := u.Attributes.Get(domain.AttrProjectile)
		if !ok {
			continue
		}
		proj := attr.(*domain.ProjectileAttribute)
		if !proj.Launched {
			continue
		}

		// Снаряд падает по дуге; на земле он исчезает.
		u.Pos.Up -= proj.Arc * dt
		if u.Pos.Up <= 0 {
			s.Units.Destroy(u.ID)
		}
	}
}

// executeCommand выполняет хендлер и пишет лог при ошибке
func (s *GameService) executeCommand(cmd api.ClientCommand) {
	if cmd.Action == "INIT" {
		// Init не меняет мир, клиенту просто нужен свежий снимок
		s.publishUpdate()
		return
	}

	handler, ok := s.handlers[cmd.Action]
	if !ok {
		logger.Log.WithField("action", cmd.Action).Warn("Unknown action")
		return
	}

	if err := handler(s, cmd); err != nil {
		logger.Log.WithFields(logrus.Fields{
			"action": cmd.Action,
			"error":  err,
		}).Warn("Command rejected")
		s.AddLog(err.Error(), "ERROR")
	}
}

// --- HANDLERS ---

func decodePayload[T api.Validator](cmd api.ClientCommand) (T, error) {
	var p T
	if err := json.Unmarshal(cmd.Payload, &p); err != nil {
		return p, fmt.Errorf("malformed %s payload: %w", cmd.Action, err)
	}
	if err := p.Validate(); err != nil {
		return p, fmt.Errorf("invalid %s payload: %w", cmd.Action, err)
	}
	return p, nil
}

// resolveUnit находит живой юнит по строковому ID из команды.
func (s *GameService) resolveUnit(idStr string) (*domain.Unit, error) {
	id, err := types.ParseUnitID(idStr)
	if err != nil {
		return nil, err
	}
	u, ok := s.Units.Get(id)
	if !ok {
		return nil, fmt.Errorf("unit %s does not exist", idStr)
	}
	return u, nil
}

func handleSpawn(s *GameService, cmd api.ClientCommand) error {
	p, err := decodePayload[api.SpawnPayload](cmd)
	if err != nil {
		return err
	}

	owner, ok := s.Players[p.PlayerID]
	if !ok {
		return fmt.Errorf("unknown player %d", p.PlayerID)
	}

	u, err := gamedata.SpawnUnit(s.Units, s.Registry, p.TypeName, owner)
	if err != nil {
		return err
	}
	u.Pos = domain.Phys3{NE: p.NE, SE: p.SE}

	s.AddLog(fmt.Sprintf("%s создает %s", owner.Name, p.TypeName), "INFO")
	return nil
}

func handleMove(s *GameService, cmd api.ClientCommand) error {
	p, err := decodePayload[api.MovePayload](cmd)
	if err != nil {
		return err
	}

	u, err := s.resolveUnit(p.UnitID)
	if err != nil {
		return err
	}
	if !u.Has(domain.AttrSpeed) {
		return fmt.Errorf("unit %s cannot move", p.UnitID)
	}

	// Телепорт вместо поиска пути: маршрутизация живет на клиенте.
	u.Pos.NE = p.NE
	u.Pos.SE = p.SE
	return nil
}

func handleAttack(s *GameService, cmd api.ClientCommand) error {
	p, err := decodePayload[api.TargetPayload](cmd)
	if err != nil {
		return err
	}

	attacker, err := s.resolveUnit(p.UnitID)
	if err != nil {
		return err
	}
	target, err := s.resolveUnit(p.TargetID)
	if err != nil {
		return err
	}

	if proj := systems.LaunchProjectile(s.Units, attacker); proj != nil {
		s.AddLog(fmt.Sprintf("%s стреляет по %s", attacker.UnitType.Name, target.UnitType.Name), "COMBAT")
	}

	if died := systems.ApplyAttack(attacker, target); died {
		s.AddLog(fmt.Sprintf("%s уничтожен", target.UnitType.Name), "COMBAT")
	}
	return nil
}

func handleHeal(s *GameService, cmd api.ClientCommand) error {
	p, err := decodePayload[api.TargetPayload](cmd)
	if err != nil {
		return err
	}

	healer, err := s.resolveUnit(p.UnitID)
	if err != nil {
		return err
	}
	target, err := s.resolveUnit(p.TargetID)
	if err != nil {
		return err
	}

	systems.TickHeal(healer, target, workUnitSeconds)
	return nil
}

func handleGather(s *GameService, cmd api.ClientCommand) error {
	p, err := decodePayload[api.TargetPayload](cmd)
	if err != nil {
		return err
	}

	worker, err := s.resolveUnit(p.UnitID)
	if err != nil {
		return err
	}
	node, err := s.resolveUnit(p.TargetID)
	if err != nil {
		return err
	}

	systems.TickGather(worker, node, workUnitSeconds)
	return nil
}

func handleDropOff(s *GameService, cmd api.ClientCommand) error {
	p, err := decodePayload[api.TargetPayload](cmd)
	if err != nil {
		return err
	}

	worker, err := s.resolveUnit(p.UnitID)
	if err != nil {
		return err
	}
	site, err := s.resolveUnit(p.TargetID)
	if err != nil {
		return err
	}

	if systems.DropOff(worker, site) {
		if owner, ok := worker.Owner(); ok {
			s.AddLog(fmt.Sprintf("%s пополняет запасы", owner.Name), "ECONOMY")
		}
	}
	return nil
}

func handleBuild(s *GameService, cmd api.ClientCommand) error {
	p, err := decodePayload[api.TargetPayload](cmd)
	if err != nil {
		return err
	}

	builder, err := s.resolveUnit(p.UnitID)
	if err != nil {
		return err
	}
	site, err := s.resolveUnit(p.TargetID)
	if err != nil {
		return err
	}

	if systems.TickConstruct(builder, site, workUnitSeconds) {
		s.AddLog(fmt.Sprintf("%s достроен", site.UnitType.Name), "INFO")
	}
	return nil
}

func handleDestroy(s *GameService, cmd api.ClientCommand) error {
	p, err := decodePayload[api.DestroyPayload](cmd)
	if err != nil {
		return err
	}

	id, err := types.ParseUnitID(p.UnitID)
	if err != nil {
		return err
	}
	if !s.Units.Destroy(id) {
		return fmt.Errorf("unit %s does not exist", p.UnitID)
	}
	return nil
}

// --- SNAPSHOT ---

// publishUpdate рассылает состояние всем подключенным клиентам
func (s *GameService) publishUpdate() {
	if s.Hub.Count() == 0 && len(s.Logs) == 0 {
		return
	}
	snapshot := s.BuildSnapshot()
	s.Logs = []api.LogEntry{}
	s.Hub.Broadcast(snapshot)
}

func (s *GameService) AddLog(text, logType string) {
	s.Logs = append(s.Logs, api.LogEntry{
		ID:        fmt.Sprintf("%d", time.Now().UnixNano()),
		Text:      text,
		Type:      logType,
		Timestamp: time.Now().UnixMilli(),
	})
}
