package format

import "fmt"

// Command identifies the kind of record that follows a CommandHeader.
type Command uint8

const (
	CommandSignon Command = iota + 1
	CommandPacket
	CommandSyncTick
	CommandConsoleCmd
	CommandUserCmd
	CommandDataTables
	CommandStop
	CommandCustomData
	CommandStringTables
)

func (c Command) String() string {
	switch c {
	case CommandSignon:
		return "dem_signon"
	case CommandPacket:
		return "dem_packet"
	case CommandSyncTick:
		return "dem_synctick"
	case CommandConsoleCmd:
		return "dem_consolecmd"
	case CommandUserCmd:
		return "dem_usercmd"
	case CommandDataTables:
		return "dem_datatables"
	case CommandStop:
		return "dem_stop"
	case CommandCustomData:
		return "dem_customdata"
	case CommandStringTables:
		return "dem_stringtables"
	}
	return fmt.Sprintf("dem_unknown(%d)", uint8(c))
}

// Known reports whether the code is one of the defined commands.
func (c Command) Known() bool {
	return c >= CommandSignon && c <= CommandStringTables
}
