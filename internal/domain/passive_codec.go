package domain

import (
	"encoding/json"
	"fmt"
)

// passiveEnvelope is the wire and storage shape of a Passive
type passiveEnvelope struct {
	Kind      PassiveKind     `json:"kind"`
	Stackable bool            `json:"stackable"`
	Fields    json.RawMessage `json:"fields"`
}

// effectDecoders maps every kind to its variant. AllPassiveKinds is derived
// from it, so a kind missing here cannot be persisted.
var effectDecoders = map[PassiveKind]func(json.RawMessage) (Effect, error){
	PassiveMoneyPerSecond:        decodeAs[MoneyPerSecond],
	PassiveMoneyPerSecondPercent: decodeAs[MoneyPerSecondPercent],
	PassiveSellBonus:             decodeAs[SellBonus],
	PassiveBoxDiscount:           decodeAs[BoxDiscount],
	PassiveExpBonus:              decodeAs[ExpBonus],
	PassiveBoxExpBonus:           decodeAs[BoxExpBonus],
	PassiveLuck:                  decodeAs[Luck],
	PassiveGradeBonus:            decodeAs[GradeBonus],
	PassiveLuckAndGrade:          decodeAs[LuckAndGrade],
	PassiveLuckAndMoney:          decodeAs[LuckAndMoney],
	PassiveCompoundMoney:         decodeAs[CompoundMoney],
	PassiveMoneyAndExp:           decodeAs[MoneyAndExp],
	PassiveTriple:                decodeAs[Triple],
	PassiveBorderUnlock:          decodeAs[BorderUnlock],
}

func decodeAs[T Effect](raw json.RawMessage) (Effect, error) {
	var e T
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// AllPassiveKinds returns every known passive kind
func AllPassiveKinds() []PassiveKind {
	kinds := make([]PassiveKind, 0, len(effectDecoders))
	for k := range effectDecoders {
		kinds = append(kinds, k)
	}
	return kinds
}

// MarshalJSON encodes the passive as {"kind", "stackable", "fields"}
func (p Passive) MarshalJSON() ([]byte, error) {
	if p.Effect == nil {
		return []byte("null"), nil
	}
	fields, err := json.Marshal(p.Effect)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s passive: %w", p.Effect.Kind(), err)
	}
	return json.Marshal(passiveEnvelope{
		Kind:      p.Effect.Kind(),
		Stackable: p.Stackable,
		Fields:    fields,
	})
}

// UnmarshalJSON decodes the envelope produced by MarshalJSON
func (p *Passive) UnmarshalJSON(data []byte) error {
	var env passiveEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("failed to decode passive: %w", err)
	}
	decode, ok := effectDecoders[env.Kind]
	if !ok {
		return fmt.Errorf("%w: unknown passive kind %q", ErrValidation, env.Kind)
	}
	effect, err := decode(env.Fields)
	if err != nil {
		return fmt.Errorf("failed to decode %s passive fields: %w", env.Kind, err)
	}
	p.Effect = effect
	p.Stackable = env.Stackable
	return nil
}
