package protocol

import "fmt"

// Every enumeration travels as one byte (FlagCode as two). Values outside the
// named constants are legal on the wire and round-trip unchanged.

type PlaneType uint8

const (
	PlanePredator PlaneType = 1
	PlaneGoliath  PlaneType = 2
	PlaneMohawk   PlaneType = 3
	PlaneTornado  PlaneType = 4
	PlaneProwler  PlaneType = 5
)

func (p PlaneType) String() string {
	switch p {
	case PlanePredator:
		return "predator"
	case PlaneGoliath:
		return "goliath"
	case PlaneMohawk:
		return "mohawk"
	case PlaneTornado:
		return "tornado"
	case PlaneProwler:
		return "prowler"
	default:
		return fmt.Sprintf("plane(%d)", uint8(p))
	}
}

type MobType uint8

const (
	MobPredatorMissile      MobType = 1
	MobGoliathMissile       MobType = 2
	MobMohawkMissile        MobType = 3
	MobUpgrade              MobType = 4
	MobTornadoSingleMissile MobType = 5
	MobTornadoTripleMissile MobType = 6
	MobProwlerMissile       MobType = 7
	MobShield               MobType = 8
	MobInferno              MobType = 9
)

type GameType uint8

const (
	GameFFA GameType = 1
	GameCTF GameType = 2
	GameBTR GameType = 3
)

type PlayerStatus uint8

const (
	StatusAlive PlayerStatus = 0
	StatusDead  PlayerStatus = 1
)

type KeyCode uint8

const (
	KeyUp      KeyCode = 1
	KeyDown    KeyCode = 2
	KeyLeft    KeyCode = 3
	KeyRight   KeyCode = 4
	KeyFire    KeyCode = 5
	KeySpecial KeyCode = 6
)

type ErrorType uint8

const (
	ErrorPacketFloodingDisconnect   ErrorType = 1
	ErrorPacketFloodingBan          ErrorType = 2
	ErrorGlobalBan                  ErrorType = 3
	ErrorIdleRequiredBeforeRespawn  ErrorType = 5
	ErrorAfkTimeout                 ErrorType = 6
	ErrorKicked                     ErrorType = 7
	ErrorInvalidLogin               ErrorType = 8
	ErrorIncorrectProtocol          ErrorType = 9
	ErrorAccountBanned              ErrorType = 10
	ErrorAccountAlreadyLoggedIn     ErrorType = 11
	ErrorNoRespawnInBTR             ErrorType = 12
	ErrorIdleRequiredBeforeSpectate ErrorType = 13
	ErrorNotEnoughUpgrades          ErrorType = 20
	ErrorChatThrottled              ErrorType = 30
	ErrorFlagChangeThrottled        ErrorType = 31
	ErrorUnknownCommand             ErrorType = 100
)

type CommandReplyType uint8

const (
	CommandReplyConsole CommandReplyType = 0
	CommandReplyPopup   CommandReplyType = 1
)

type UpgradeType uint8

const (
	UpgradeNone    UpgradeType = 0
	UpgradeSpeed   UpgradeType = 1
	UpgradeDefense UpgradeType = 2
	UpgradeEnergy  UpgradeType = 3
	UpgradeMissile UpgradeType = 4
)

type PowerupType uint8

const (
	PowerupShield  PowerupType = 1
	PowerupInferno PowerupType = 2
)

type PlayerLevelType uint8

const (
	PlayerLevelLogin   PlayerLevelType = 0
	PlayerLevelLevelUp PlayerLevelType = 1
)

type FlagUpdateType uint8

const (
	FlagUpdatePosition FlagUpdateType = 1
	FlagUpdateCarrier  FlagUpdateType = 2
)

type FirewallUpdateType uint8

const (
	FirewallUpdate FirewallUpdateType = 1
)

type FirewallStatus uint8

const (
	FirewallInactive FirewallStatus = 0
	FirewallActive   FirewallStatus = 1
)

type LeaveHorizonType uint8

const (
	LeaveHorizonPlayer LeaveHorizonType = 0
	LeaveHorizonMob    LeaveHorizonType = 1
)

type ServerMessageType uint8

const (
	ServerMessageTimeToGameStart ServerMessageType = 1
	ServerMessageFlag            ServerMessageType = 2
	ServerMessageShutdown        ServerMessageType = 15
	ServerMessageBanner          ServerMessageType = 16
)

type ServerCustomType uint8

const (
	ServerCustomBTRWin ServerCustomType = 1
	ServerCustomCTFWin ServerCustomType = 2
)

// FlagCode selects the country flag shown next to a player name.
type FlagCode uint16
