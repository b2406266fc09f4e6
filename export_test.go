package launchcfg

// Reset discards the process-wide snapshot between tests.
var Reset = reset
