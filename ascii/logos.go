// Package ascii provides the art blocks shown beside the system summary.
// Blocks are stored unstyled, one string per row; color is applied at render
// time so width math never sees escape sequences.
package ascii

// Seal returns a seal resting on a wave crest.
func Seal() []string {
	return []string{
		"                                  __",
		"                               _.-~  )",
		"                    _..--~~~~,'   ,-/     _",
		"                 .-'. . . .'   ,-','    ,' )",
		"               ,'. . . _   ,--~,-'__..-'  ,'",
		"             ,'. . .  (@)' ---~~~~      ,'",
		"            /. . . . '~~             ,-'",
		"           /. . . . .             ,-'",
		"          ; . . . .  - .        ,'",
		"         : . . . .       _     /",
		"        . . . . .          `-.:",
		"       . . . ./  - .          )",
		"      .  . . |  _____..---.._/ ____ Seal _",
		"~---~~~~----~~~~             ~~",
	}
}

// Alone returns a hooded figure framed by a tattered cloak.
func Alone() []string {
	return []string{
		"     _                  _",
		"    | '-.            .-' |",
		"    | -. '..\\\\,.//,.' .- |",
		"    |   \\  \\\\\\||///  /   |",
		"   /|    )M\\/%%%%/\\/(  . |\\",
		"  (/\\  MM\\/%/\\||/%\\\\/MM  /\\)",
		"  (//M   \\%\\\\\\%%//%//   M\\\\)",
		"(// M________ /\\ ________M \\\\)",
		" (// M\\ \\(',)|  |(',)/ /M \\\\) \\\\\\\\",
		"  (\\\\ M\\.  /,\\\\//,\\  ./M //)",
		"    / MMmm( \\\\||// )mmMM \\  \\\\",
		"     // MMM\\\\\\||///MMM \\\\ \\\\",
		"      \\//''\\)/||\\(/''\\\\/ \\\\",
		"      mrf\\\\( \\oo/ )\\\\\\/\\",
		"           \\'-..-'\\/\\\\",
		"              \\\\/ \\\\",
		"        ",
	}
}

// Camel returns a camel crossing the desert.
func Camel() []string {
	return []string{
		" ___.-''''-.",
		"/___  @    |",
		"',,,,.     |         _.'''''''._",
		"     '     |        /           \\",
		"     |     \\    _.-'             \\",
		"     |      '.-'                  '-.",
		"     |                               ',",
		"     |                                '',",
		"      ',,-,                           ':;",
		"           ',,| ;,,                 ,' ;;",
		"              ! ; !'',,,',',,,,'!  ;   ;:",
		"             : ;  ! !       ! ! ;  ;   :;",
		"             ; ;   ! !      ! !  ; ;   ;,",
		"            ; ;    ! !     ! !   ; ;",
		"            ; ;    ! !    ! !     ; ;",
		"           ;,,      !,!   !,!     ;,;",
		"           /_I      L_I   L_I     /_I",
	}
}

// Windows returns the four-pane window flag.
func Windows() []string {
	return []string{
		"                               ..,,",
		"                    ....,,:;+ccllll",
		"      ...,,+:;  cllllllllllllllllll",
		",cclllllllllll  lllllllllllllllllll",
		"llllllllllllll  lllllllllllllllllll",
		"llllllllllllll  lllllllllllllllllll",
		"llllllllllllll  lllllllllllllllllll",
		"llllllllllllll  lllllllllllllllllll",
		"llllllllllllll  lllllllllllllllllll",
		"",
		"llllllllllllll  lllllllllllllllllll",
		"llllllllllllll  lllllllllllllllllll",
		"llllllllllllll  lllllllllllllllllll",
		"llllllllllllll  lllllllllllllllllll",
		"llllllllllllll  lllllllllllllllllll",
		"`'ccllllllllll  lllllllllllllllllll",
	}
}
