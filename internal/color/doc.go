// Package color sets up terminal color handling for custview.
//
// lipgloss adapts colors to the terminal on its own; the only decision left
// to the application is whether the background is dark or light, because the
// design palette uses adaptive colors. The "colorMode" setting picks that:
// "dark" and "light" force the choice, "auto" keeps the terminal's answer.
//
// NO_COLOR is honoured by dropping to the ASCII profile.
package color
