// Package utils holds small helpers shared by the transport layers: JSON
// response writing, the resty client used for outbound calls and trace id
// generation.
package utils
