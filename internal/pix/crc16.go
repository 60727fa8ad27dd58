// internal/pix/crc16.go
package pix

// crc16 implementa o CRC-16/CCITT-FALSE exigido pelo BR Code:
// polinômio 0x1021, valor inicial 0xFFFF, sem reflexão, sem XOR final.
func crc16(data string) uint16 {
	crc := uint16(0xFFFF)
	for i := 0; i < len(data); i++ {
		crc ^= uint16(data[i]) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = (crc << 1) ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
