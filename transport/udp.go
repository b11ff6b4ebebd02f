package transport

import (
	"bytes"
	"net"
)

// UDPReader reads NMEA 0183 sentences delivered one-per-datagram, as some
// AIS base-station feeds broadcast over UDP rather than a TCP stream.
type UDPReader struct {
	conn *net.UDPConn
	buf  [2048]byte
}

// ListenUDP opens a UDP socket on addr ("host:port", host may be empty to
// listen on all interfaces).
func ListenUDP(addr string) (*UDPReader, error) {
	udpAddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, err
	}
	conn, err := net.ListenUDP("udp", udpAddr)
	if err != nil {
		return nil, err
	}
	return &UDPReader{conn: conn}, nil
}

// ReadLine returns the next datagram's payload with any trailing newline
// trimmed, matching the reader collaborator contract in spec §6.
func (r *UDPReader) ReadLine() ([]byte, error) {
	n, err := r.conn.Read(r.buf[:])
	if err != nil {
		return nil, err
	}
	line := bytes.TrimRight(r.buf[:n], "\r\n")
	out := make([]byte, len(line))
	copy(out, line)
	return out, nil
}

// Close closes the underlying UDP socket.
func (r *UDPReader) Close() error {
	return r.conn.Close()
}
