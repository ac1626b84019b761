package catalog

import (
	"fmt"

	"github.com/osse101/LootForge_Go/internal/domain"
)

func stacking(e domain.Effect) *domain.Passive { return &domain.Passive{Effect: e, Stackable: true} }
func unique(e domain.Effect) *domain.Passive   { return &domain.Passive{Effect: e, Stackable: false} }

func weapon(id int, name string, t domain.WeaponType, r domain.Rarity, price float64, p *domain.Passive) domain.Weapon {
	return domain.Weapon{
		ID:        id,
		Name:      name,
		Type:      t,
		Rarity:    r,
		BasePrice: price,
		Passive:   p,
		Icon:      fmt.Sprintf("weapons/%d.png", id),
	}
}

// weaponDefinitions returns the built-in weapon list. Box membership is
// filled in from boxDefinitions by New.
func weaponDefinitions() []domain.Weapon {
	const (
		pistol  = domain.WeaponTypePistol
		rifle   = domain.WeaponTypeRifle
		assault = domain.WeaponTypeAssault
		smg     = domain.WeaponTypeSMG
		shotgun = domain.WeaponTypeShotgun
		sniper  = domain.WeaponTypeSniper
		lmg     = domain.WeaponTypeLMG
		knife   = domain.WeaponTypeKnife

		common    = domain.RarityCommon
		uncommon  = domain.RarityUncommon
		rare      = domain.RarityRare
		epic      = domain.RarityEpic
		legendary = domain.RarityLegendary
		mythic    = domain.RarityMythic
	)

	weapons := []domain.Weapon{
		// Opener Guns
		weapon(1, "Beretta 92FS Manzana", pistol, rare, 25, unique(domain.BoxDiscount{Fraction: 0.05})),
		weapon(2, "Galil ACE Arena", rifle, common, 2.5, stacking(domain.MoneyPerSecond{Value: 0.008})),
		weapon(3, "Glock-17 Cereza", pistol, uncommon, 6, stacking(domain.SellBonus{Fraction: 0.02})),
		weapon(4, "MP5 Militar", smg, common, 2.7, stacking(domain.MoneyPerSecond{Value: 0.008})),
		weapon(5, "Remington 870 Celeste", shotgun, common, 1.8, stacking(domain.MoneyPerSecond{Value: 0.008})),
		weapon(6, "SSG 08 Cazador Morado", sniper, epic, 125, unique(domain.ExpBonus{Fraction: 0.2})),

		// Caja Somp
		weapon(7, "Beretta 1301 Arena", shotgun, common, 12, stacking(domain.MoneyPerSecond{Value: 0.08})),
		weapon(8, "Sig Sauer P226 Limon", pistol, common, 15, stacking(domain.MoneyPerSecond{Value: 0.07})),
		weapon(9, "Famas Militar", rifle, common, 11, stacking(domain.MoneyPerSecond{Value: 0.07})),
		weapon(10, "Glock 26 Navideña", pistol, uncommon, 45, stacking(domain.SellBonus{Fraction: 0.02})),
		weapon(11, "G3SG1 Milicia", sniper, uncommon, 55, stacking(domain.SellBonus{Fraction: 0.2})),
		weapon(12, "AR-10 Esmeralda", rifle, rare, 132, unique(domain.BoxDiscount{Fraction: 0.03})),
		weapon(13, "M16A4 Noche Lunar", rifle, rare, 112, stacking(domain.MoneyPerSecond{Value: 0.1})),
		weapon(14, "Desert Eagle Sonriente", pistol, epic, 350, stacking(domain.ExpBonus{Fraction: 0.1})),
		weapon(15, "AK 47 Fuego Artificial", rifle, epic, 485, stacking(domain.ExpBonus{Fraction: 0.1})),
		weapon(16, "AWP Flama", sniper, legendary, 1000, unique(domain.Luck{Value: 15})),

		// Caja Thunder
		weapon(17, "Kimber Micro 9 Arena", pistol, common, 33, stacking(domain.MoneyPerSecond{Value: 0.03})),
		weapon(18, "SCAR-H Negro Arena", rifle, common, 35, stacking(domain.MoneyPerSecond{Value: 0.03})),
		weapon(19, "Famas Madera", rifle, common, 40, unique(domain.Luck{Value: 1})),
		weapon(20, "Steyr M9-A1 Bosque", pistol, uncommon, 115, unique(domain.BoxDiscount{Fraction: 0.02})),
		weapon(21, "Dragunov SVD Solar", sniper, uncommon, 100, stacking(domain.SellBonus{Fraction: 0.07})),
		weapon(22, "Ruger GP100 Calavera", pistol, uncommon, 103, stacking(domain.MoneyPerSecond{Value: 0.08})),
		weapon(23, "Winchester 1887 Purpura Dorado", shotgun, rare, 445, stacking(domain.MoneyPerSecond{Value: 0.12})),
		weapon(24, "Mac-11 Tigrado", smg, rare, 450, unique(domain.LuckAndGrade{Luck: 0, GradeBonus: 5})),
		weapon(25, "P90 Bad Bunny", smg, epic, 880, unique(domain.ExpBonus{Fraction: 0.2})),
		weapon(26, "KRISS Vector Platinada", smg, epic, 420, unique(domain.BoxDiscount{Fraction: 0.03})),
		weapon(27, "Glock 18 Case Hardened", pistol, legendary, 2100, stacking(domain.LuckAndMoney{Luck: 2, MoneyPerSecond: 3})),
		weapon(28, "M4A4 Poseidon", rifle, legendary, 2250, stacking(domain.ExpBonus{Fraction: 0.35})),
		weapon(29, "Cuchillo A2 Militar", knife, mythic, 12000, unique(domain.ExpBonus{Fraction: 2.0})),
		weapon(30, "Cuchillo A2 Zafiro", knife, mythic, 18500, unique(domain.LuckAndGrade{Luck: 12, GradeBonus: 25})),
		weapon(31, "Cuchillo A2 Ruby", knife, mythic, 18500, unique(domain.CompoundMoney{MoneyPerSecond: 25, ExtraFraction: 0.15})),
		{
			ID:             32,
			Name:           "Borde Thunder",
			Type:           domain.WeaponTypeBorder,
			Rarity:         domain.RarityAncestral,
			BasePrice:      500,
			Passive:        unique(domain.BorderUnlock{Luck: 15, ExpFraction: 0.25}),
			Icon:           "borders/lightning.png",
			NonGradable:    true,
			BorderUnlockID: BorderLightning,
		},

		// Caja Snonbli
		weapon(33, "Galil ACE Militar", assault, common, 65, stacking(domain.MoneyPerSecond{Value: 0.15})),
		weapon(34, "AWP Cielo", sniper, common, 65, stacking(domain.MoneyPerSecond{Value: 0.15})),
		weapon(35, "P90 Verde", smg, common, 78, unique(domain.BoxDiscount{Fraction: 1})),
		weapon(36, "Neveg Manzana", lmg, uncommon, 190, stacking(domain.MoneyPerSecond{Value: 0.33})),
		weapon(37, "Glock-17 Brisa", pistol, uncommon, 205, stacking(domain.BoxExpBonus{Percent: 2})),
		weapon(38, "Desert Deagle Cesped", pistol, uncommon, 215, unique(domain.GradeBonus{Value: 3})),
		weapon(39, "Dragunov SVD Dia Nublado", sniper, rare, 1200, stacking(domain.Luck{Value: 1})),
		weapon(40, "Kimber Micro 9 Dulces", pistol, rare, 1350, stacking(domain.SellBonus{Fraction: 4.5})),
		weapon(41, "MP5 Red Line", smg, rare, 1450, unique(domain.MoneyPerSecond{Value: 1})),
		weapon(42, "Beretta 1301 Iceberg", shotgun, epic, 3800, stacking(domain.MoneyAndExp{MoneyPerSecond: 0.45, ExpPercent: 3})),
		weapon(43, "SSG 08 Alien X", sniper, epic, 4000, unique(domain.Luck{Value: 9})),
		weapon(44, "M16A4 Anime", assault, legendary, 12000, stacking(domain.Triple{Luck: 10, GradeBonus: 10, ExpPercent: 5})),
		weapon(45, "Ruger GP100 Oro", pistol, legendary, 9500, stacking(domain.MoneyPerSecondPercent{Percent: 10})),
		weapon(46, "Cuchillo Bowie Fade", knife, mythic, 38500, unique(domain.BoxExpBonus{Percent: 250})),
		weapon(47, "Cuchillo Bowie Case Hardened", knife, mythic, 38500, stacking(domain.Luck{Value: 35})),
		weapon(48, "Cuchillo Bowie Original", knife, mythic, 38500, stacking(domain.MoneyPerSecond{Value: 100})),
	}
	return weapons
}
