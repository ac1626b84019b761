package lootbox

import "github.com/osse101/LootForge_Go/internal/domain"

// ============================================================================
// Luck
// ============================================================================

// LuckDiminishingFactor controls how quickly luck stops paying off
const LuckDiminishingFactor = 0.05

// LuckBonusScale converts the diminished luck bonus into a multiplier
const LuckBonusScale = 0.01

// LuckMinRarity is the lowest rarity boosted by luck
const LuckMinRarity = domain.RarityEpic

// ============================================================================
// Grades
// ============================================================================

// GradeBonusCap is the M increase for any grade bonus above 1000
const GradeBonusCap = 0.5

// GradeDrawScale maps a [0,1) draw onto the percent grade table
const GradeDrawScale = 100

// ============================================================================
// Service
// ============================================================================

// DefaultDistributionCacheSize bounds cached (box, luck) distributions
const DefaultDistributionCacheSize = 512

// MaxPreviewSize caps a roulette preview request
const MaxPreviewSize = 100

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgBoxOpened          = "Box opened"
	LogMsgInsufficientFunds  = "Box purchase rejected, insufficient funds"
	LogMsgOpenBoxFailed      = "Failed to open box"
	LogMsgPlayerLookupFailed = "Failed to load player stats for box pricing"
)

// Log field keys for structured logging
const (
	LogFieldPlayerID = "player_id"
	LogFieldBoxID    = "box_id"
	LogFieldWeaponID = "weapon_id"
	LogFieldGrade    = "grade"
	LogFieldConta    = "conta"
	LogFieldError    = "error"
)

// Error context messages for wrapped errors
const (
	ErrContextFailedToBeginTx     = "failed to begin transaction"
	ErrContextFailedToLockPlayer  = "failed to lock player"
	ErrContextFailedToDebit       = "failed to debit box price"
	ErrContextFailedToInsertItem  = "failed to insert item"
	ErrContextFailedToRecordStats = "failed to record weapon stats"
	ErrContextFailedToUnlock      = "failed to unlock weapon"
	ErrContextFailedToAddExp      = "failed to add experience"
	ErrContextFailedToCommit      = "failed to commit transaction"
)
