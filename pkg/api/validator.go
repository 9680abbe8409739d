package api

import "errors"

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p SpawnPayload) Validate() error {
	if p.TypeName == "" {
		return errors.New("typeName is required")
	}
	if p.PlayerID < 0 {
		return errors.New("playerId cannot be negative")
	}
	return nil
}

func (p TargetPayload) Validate() error {
	if p.UnitID == "" {
		return errors.New("unitId is required")
	}
	if p.TargetID == "" {
		return errors.New("targetId is required")
	}
	if p.UnitID == p.TargetID {
		return errors.New("unit cannot target itself")
	}
	return nil
}

func (p MovePayload) Validate() error {
	if p.UnitID == "" {
		return errors.New("unitId is required")
	}
	return nil
}

func (p DestroyPayload) Validate() error {
	if p.UnitID == "" {
		return errors.New("unitId is required")
	}
	return nil
}
