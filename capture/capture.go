// Package capture extracts the innermost application payload from
// packets read out of a pcap capture file, for feeding to the scanner
// as an independent byte source per packet.
package capture

import (
	"fmt"
	"io"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
)

// ReadPcap parses every packet in r (classic pcap format) and returns
// the innermost payload of each, in file order.
func ReadPcap(r io.Reader) ([][]byte, error) {
	reader, err := pcapgo.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("open pcap: %w", err)
	}

	var payloads [][]byte

	for {
		data, _, err := reader.ReadPacketData()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read packet: %w", err)
		}

		packet := gopacket.NewPacket(data, reader.LinkType(), gopacket.Lazy)
		payloads = append(payloads, InnermostPayload(packet))
	}

	return payloads, nil
}

// InnermostPayload returns the deepest application-layer payload gopacket
// can identify: the transport layer's payload (TCP, UDP, ICMPv4, ICMPv6)
// if one decoded; otherwise the network layer's payload (IPv4, IPv6);
// otherwise the link layer's payload; otherwise an empty slice.
func InnermostPayload(packet gopacket.Packet) []byte {
	if t := packet.TransportLayer(); t != nil {
		return t.LayerPayload()
	}

	if icmp4 := packet.Layer(layers.LayerTypeICMPv4); icmp4 != nil {
		return icmp4.LayerPayload()
	}

	if icmp6 := packet.Layer(layers.LayerTypeICMPv6); icmp6 != nil {
		return icmp6.LayerPayload()
	}

	if n := packet.NetworkLayer(); n != nil {
		return n.LayerPayload()
	}

	if l := packet.LinkLayer(); l != nil {
		return l.LayerPayload()
	}

	return nil
}
