package handler

import (
	"net/http"

	"github.com/osse101/LootForge_Go/internal/catalog"
	"github.com/osse101/LootForge_Go/internal/domain"
	"github.com/osse101/LootForge_Go/internal/player"
)

// WeaponView is a catalog weapon with display labels
type WeaponView struct {
	*domain.Weapon
	RarityLabel string `json:"rarity_label"`
	TypeLabel   string `json:"type_label"`
}

func newWeaponView(w *domain.Weapon) WeaponView {
	return WeaponView{
		Weapon:      w,
		RarityLabel: catalog.RarityLabel(w.Rarity),
		TypeLabel:   catalog.TypeLabel(w.Type),
	}
}

// HandleListWeapons lists the catalog, optionally narrowed to one rarity or box
// @Summary List weapons
// @Tags weapons
// @Produce json
// @Param rarity query string false "Rarity name"
// @Param box query int false "Box ID"
// @Success 200 {array} WeaponView
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/weapons [get]
func HandleListWeapons(c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		weapons := c.Weapons()

		boxID, ok := QueryInt(w, r, "box", 0)
		if !ok {
			return
		}
		if boxID != 0 {
			inBox, err := c.WeaponsInBox(boxID)
			if err != nil {
				respondServiceError(w, r, "Box lookup failed", err, "box_id", boxID)
				return
			}
			weapons = inBox
		}

		var rarity domain.Rarity
		if raw := r.URL.Query().Get(QueryParamRarity); raw != "" {
			parsed, err := domain.ParseRarity(raw)
			if err != nil {
				respondServiceError(w, r, "Invalid rarity filter", err)
				return
			}
			rarity = parsed
		}

		views := make([]WeaponView, 0, len(weapons))
		for _, weapon := range weapons {
			if rarity != 0 && weapon.Rarity != rarity {
				continue
			}
			views = append(views, newWeaponView(weapon))
		}

		respondJSON(w, http.StatusOK, views)
	}
}

// HandleGetWeapon returns one catalog weapon
// @Summary Get weapon
// @Tags weapons
// @Produce json
// @Param id path int true "Weapon ID"
// @Success 200 {object} WeaponView
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/weapons/{id} [get]
func HandleGetWeapon(c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		weaponID, ok := PathInt(w, r, PathParamID)
		if !ok {
			return
		}

		weapon, err := c.Weapon(weaponID)
		if err != nil {
			respondServiceError(w, r, "Weapon lookup failed", err, "weapon_id", weaponID)
			return
		}

		respondJSON(w, http.StatusOK, newWeaponView(weapon))
	}
}

// HandleWeaponStats returns the drop counters of one weapon
// @Summary Weapon drop stats
// @Tags weapons
// @Produce json
// @Param id path int true "Weapon ID"
// @Success 200 {object} domain.WeaponStats
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/weapons/{id}/stats [get]
func HandleWeaponStats(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		weaponID, ok := PathInt(w, r, PathParamID)
		if !ok {
			return
		}

		stats, err := svc.WeaponStats(r.Context(), weaponID)
		if err != nil {
			respondServiceError(w, r, LogMsgWeaponStatsFailed, err, "weapon_id", weaponID)
			return
		}

		respondJSON(w, http.StatusOK, stats)
	}
}

// HandleAllWeaponStats returns the counters of every weapon that has dropped
// @Summary All weapon drop stats
// @Tags weapons
// @Produce json
// @Success 200 {array} domain.WeaponStats
// @Router /api/v1/weapons/stats [get]
func HandleAllWeaponStats(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.AllWeaponStats(r.Context())
		if err != nil {
			respondServiceError(w, r, LogMsgWeaponStatsFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, stats)
	}
}
