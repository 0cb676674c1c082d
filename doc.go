/*Package tello provides an unofficial, easy-to-use, standalone client for the Ryze Tello® drone's SDK 2.0/3.0 text-based UDP command protocol.

Disclaimer

Tello is a registered trademark of Ryze Tech. The author(s) of this package is/are in no way affiliated with Ryze, DJI, or Intel.
The package has been developed from the published Tello SDK documentation and by observing the drone's own UDP traffic.

Use this package at your own risk. The author(s) is/are in no way responsible for any damage caused either to or by the
drone when using this software.

Concepts

Connections

A Drone talks to the physical aircraft over three UDP channels: command/response on the client's fixed control port
("command", "takeoff", "battery?", ...), state telemetry on the state port (a semicolon-delimited key:value line, ~10Hz),
and, once StreamOn/StartVideo is called, an H.264 Annex B video elementary stream on the video port. Every Drone in a process shares one control
socket and one state socket; datagrams are demultiplexed by the sender's source IP, which is what lets several drones
share a single client without a socket each.

Commands

Three command shapes exist. Control commands ("takeoff", "land", "cw 90") expect an "ok" reply (in any letter case) and are retried
on anything else. Read commands ("battery?", "speed?") expect a value reply, and a reply carrying an error marker
becomes a CommandFailed error. Commands without a reply ("emergency", "rc", "wifi ssid pass") are fire-and-forget.

Telemetry vs. Queries

Cached telemetry (GetBattery, GetHeight, GetPitch, ...) reads the last state-channel snapshot instantly and never
blocks on the network. Queries (QueryBattery, QueryHeight, QueryAttitude, ...) round-trip a read command to the drone
and block for its reply. Prefer the cached getters in a control loop; use the query forms when you need a value the
telemetry stream does not carry, or a guaranteed-fresh read.

Video

Video framing (turning the UDP byte stream into H.264 access units) is built in; decoding an access unit into pixels
is not - plug in any decoder satisfying the video.Decoder interface. This keeps the dependency on a particular decode
strategy (cgo binding, hardware decoder, pure-Go software decoder) entirely up to the caller.

Swarms

Package swarm coordinates several drones sharing the process's control port: Parallel fans a function out to every
drone and waits for them all, Sequential runs them one at a time, and Sync is a rendezvous barrier a broadcast
function can call to make every drone wait for its slowest sibling mid-action.
*/
package tello
