package protocol

import "testing"

func TestCommandTags(t *testing.T) {
	if ReadData() != 0x0000 {
		t.Errorf("ReadData: expected 0x0000, got %#04x", ReadData())
	}
	if ReadConf() != 0x4000 {
		t.Errorf("ReadConf: expected 0x4000, got %#04x", ReadConf())
	}
	if WriteData(0) != 0x8000 {
		t.Errorf("WriteData(0): expected 0x8000, got %#04x", WriteData(0))
	}
	if WriteConf(0) != 0xC000 {
		t.Errorf("WriteConf(0): expected 0xC000, got %#04x", WriteConf(0))
	}
}

func TestWriteDataCarriesByte(t *testing.T) {
	for i := 0; i < 256; i++ {
		w := WriteData(byte(i))
		if w&0xFF00 != CmdWriteData {
			t.Fatalf("WriteData(%#02x): tag bits corrupted: %#04x", i, w)
		}
		if DataByte(w) != byte(i) {
			t.Fatalf("WriteData(%#02x): payload %#02x", i, DataByte(w))
		}
	}
}

func TestDataByteRoundTrip(t *testing.T) {
	// A status word with the receiver bit set must decode to exactly its
	// low 8 bits, for every byte value.
	for i := 0; i < 256; i++ {
		status := ConfR | uint16(i)
		if !ReceiverHasData(status) {
			t.Fatalf("status %#04x: receiver bit not decoded", status)
		}
		if DataByte(status) != byte(i) {
			t.Fatalf("status %#04x: expected data byte %#02x, got %#02x",
				status, i, DataByte(status))
		}
	}
}

func TestStatusBits(t *testing.T) {
	if ReceiverHasData(0x0000) {
		t.Error("empty status decoded as receiver-has-data")
	}
	if TransmitterReady(0x0000) {
		t.Error("empty status decoded as transmitter-ready")
	}
	if !TransmitterReady(ConfT) {
		t.Error("ConfT status not decoded as transmitter-ready")
	}
	if !ReceiverHasData(ConfR | ConfT) {
		t.Error("combined status lost receiver bit")
	}
	if !TransmitterReady(ConfR | ConfT) {
		t.Error("combined status lost transmitter bit")
	}
}

func TestWriteConfComposition(t *testing.T) {
	w := WriteConf(BaudX2_115200 | ConfRM)
	if w != CmdWriteConf|ConfRM|0b0001 {
		t.Errorf("WriteConf: expected %#04x, got %#04x", CmdWriteConf|ConfRM|0b0001, w)
	}
}

func TestWireOrder(t *testing.T) {
	var buf [2]byte
	PutWord(buf[:], 0x8041)
	if buf[0] != 0x80 || buf[1] != 0x41 {
		t.Errorf("PutWord: expected [80 41], got [%02x %02x]", buf[0], buf[1])
	}
	if Word(buf[:]) != 0x8041 {
		t.Errorf("Word: expected 0x8041, got %#04x", Word(buf[:]))
	}
}
