package fio

import (
	"encoding/binary"
	"errors"

	bin "github.com/gagliardetto/binary"
	"github.com/openweb3-io/txsigner/codec/varint"
	xc "github.com/openweb3-io/txsigner/types"
)

// Transaction is the packed form signed by FIO. Resource limits and delay are
// always zero and extensions are always empty.
type Transaction struct {
	Expiration     uint32
	RefBlockNum    uint16
	RefBlockPrefix uint32
	Actions        []*RawAction
}

func (t *Transaction) MarshalBinary() ([]byte, error) {
	return marshal(func(enc *bin.Encoder) error {
		if err := enc.WriteUint32(t.Expiration, binary.LittleEndian); err != nil {
			return err
		}
		if err := enc.WriteUint16(t.RefBlockNum, binary.LittleEndian); err != nil {
			return err
		}
		if err := enc.WriteUint32(t.RefBlockPrefix, binary.LittleEndian); err != nil {
			return err
		}
		// max_net_usage_words, max_cpu_usage_ms, delay_sec, context_free_actions
		for _, b := range []byte{0, 0, 0, 0} {
			if err := enc.WriteByte(b); err != nil {
				return err
			}
		}
		if err := enc.WriteUVarInt(len(t.Actions)); err != nil {
			return err
		}
		for _, action := range t.Actions {
			if err := action.encode(enc); err != nil {
				return err
			}
		}
		// transaction_extensions
		return enc.WriteByte(0)
	})
}

type reader struct {
	b   []byte
	off int
}

func (r *reader) take(n int, field string) ([]byte, error) {
	if n < 0 || len(r.b)-r.off < n {
		return nil, xc.NewErr(xc.ErrTruncatedInput, "%s needs %d bytes at offset %d, %d left", field, n, r.off, len(r.b)-r.off)
	}
	out := r.b[r.off : r.off+n]
	r.off += n
	return out, nil
}

func (r *reader) uint16(field string) (uint16, error) {
	b, err := r.take(2, field)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (r *reader) uint32(field string) (uint32, error) {
	b, err := r.take(4, field)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *reader) uint64(field string) (uint64, error) {
	b, err := r.take(8, field)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (r *reader) name(field string) (Name, error) {
	v, err := r.uint64(field)
	return Name(v), err
}

func (r *reader) uvarint(field string) (uint32, error) {
	v, n, err := varint.ReadUvarint32(r.b[r.off:])
	if err != nil {
		var xcErr *xc.Error
		if errors.As(err, &xcErr) {
			return 0, xc.NewErr(xcErr, "%s at offset %d", field, r.off)
		}
		return 0, err
	}
	r.off += n
	return v, nil
}

func (r *reader) bytes(field string) ([]byte, error) {
	n, err := r.uvarint(field)
	if err != nil {
		return nil, err
	}
	return r.take(int(n), field)
}

func (r *reader) string(field string) (string, error) {
	b, err := r.bytes(field)
	return string(b), err
}

func (r *reader) zero(field string) error {
	v, err := r.uvarint(field)
	if err != nil {
		return err
	}
	if v != 0 {
		return xc.NewErr(xc.ErrNotSupported, "%s must be empty, got %d", field, v)
	}
	return nil
}

func (r *reader) done() error {
	if r.off != len(r.b) {
		return xc.NewErr(xc.ErrInvalidValue, "%d trailing bytes", len(r.b)-r.off)
	}
	return nil
}

// DecodeTransaction parses a packed transaction. Truncated input is an error,
// never an empty default.
func DecodeTransaction(packed []byte) (*Transaction, error) {
	r := &reader{b: packed}
	var (
		tx  Transaction
		err error
	)
	if tx.Expiration, err = r.uint32("expiration"); err != nil {
		return nil, err
	}
	if tx.RefBlockNum, err = r.uint16("ref_block_num"); err != nil {
		return nil, err
	}
	if tx.RefBlockPrefix, err = r.uint32("ref_block_prefix"); err != nil {
		return nil, err
	}
	if err := r.zero("max_net_usage_words"); err != nil {
		return nil, err
	}
	cpu, err := r.take(1, "max_cpu_usage_ms")
	if err != nil {
		return nil, err
	}
	if cpu[0] != 0 {
		return nil, xc.NewErr(xc.ErrNotSupported, "max_cpu_usage_ms must be zero, got %d", cpu[0])
	}
	if err := r.zero("delay_sec"); err != nil {
		return nil, err
	}
	if err := r.zero("context_free_actions"); err != nil {
		return nil, err
	}
	count, err := r.uvarint("actions")
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < count; i++ {
		action, err := decodeRawAction(r)
		if err != nil {
			return nil, err
		}
		tx.Actions = append(tx.Actions, action)
	}
	if err := r.zero("transaction_extensions"); err != nil {
		return nil, err
	}
	if err := r.done(); err != nil {
		return nil, err
	}
	return &tx, nil
}

func decodeRawAction(r *reader) (*RawAction, error) {
	var (
		a   RawAction
		err error
	)
	if a.Account, err = r.name("account"); err != nil {
		return nil, err
	}
	if a.Name, err = r.name("name"); err != nil {
		return nil, err
	}
	auths, err := r.uvarint("authorization")
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < auths; i++ {
		var p PermissionLevel
		if p.Actor, err = r.name("actor"); err != nil {
			return nil, err
		}
		if p.Permission, err = r.name("permission"); err != nil {
			return nil, err
		}
		a.Authorization = append(a.Authorization, p)
	}
	if a.Data, err = r.bytes("data"); err != nil {
		return nil, err
	}
	return &a, nil
}

// ActionData is the decoded payload of one of the supported actions.
type ActionData struct {
	Action Action
	Actor  Name
	TPID   string
}

// DecodeActionData parses the data of a regaddress, addaddress, renewaddress,
// trnsfiopubky or newfundsreq action. Request content stays encrypted; see
// DecryptNewFundsContent.
func DecodeActionData(a *RawAction) (*ActionData, error) {
	r := &reader{b: a.Data}
	out := &ActionData{}
	var err error
	switch {
	case a.Account == contractAddress && a.Name == actionRegAddress:
		msg := &RegisterFioAddress{}
		if msg.FioAddress, err = r.string("fio_address"); err != nil {
			return nil, err
		}
		if msg.OwnerPublicKey, err = r.string("owner_fio_public_key"); err != nil {
			return nil, err
		}
		out.Action.RegisterFioAddress = msg
		err = out.trailer(r, &msg.Fee)
	case a.Account == contractAddress && a.Name == actionAddAddress:
		msg := &AddPubAddress{}
		if msg.FioAddress, err = r.string("fio_address"); err != nil {
			return nil, err
		}
		var n uint32
		if n, err = r.uvarint("public_addresses"); err != nil {
			return nil, err
		}
		for i := uint32(0); i < n; i++ {
			addr := &PublicAddress{}
			for _, f := range []struct {
				dst  *string
				name string
			}{{&addr.TokenCode, "token_code"}, {&addr.ChainCode, "chain_code"}, {&addr.Address, "public_address"}} {
				if *f.dst, err = r.string(f.name); err != nil {
					return nil, err
				}
			}
			msg.PublicAddresses = append(msg.PublicAddresses, addr)
		}
		out.Action.AddPubAddress = msg
		err = out.trailer(r, &msg.Fee)
	case a.Account == contractAddress && a.Name == actionRenewAddress:
		msg := &RenewFioAddress{}
		if msg.FioAddress, err = r.string("fio_address"); err != nil {
			return nil, err
		}
		out.Action.RenewFioAddress = msg
		err = out.trailer(r, &msg.Fee)
	case a.Account == contractToken && a.Name == actionTransfer:
		msg := &Transfer{}
		if msg.PayeePublicKey, err = r.string("payee_public_key"); err != nil {
			return nil, err
		}
		var amount uint64
		if amount, err = r.uint64("amount"); err != nil {
			return nil, err
		}
		msg.Amount = xc.NewBigIntFromUint64(amount)
		out.Action.Transfer = msg
		err = out.trailer(r, &msg.Fee)
	case a.Account == contractReqObt && a.Name == actionNewFundsReq:
		msg := &NewFundsRequest{}
		for _, f := range []struct {
			dst  *string
			name string
		}{{&msg.PayerFioName, "payer_fio_name"}, {&msg.PayeeFioName, "payee_fio_name"}, {&msg.EncryptedContent, "content"}} {
			if *f.dst, err = r.string(f.name); err != nil {
				return nil, err
			}
		}
		out.Action.NewFundsRequest = msg
		err = out.trailer(r, &msg.Fee)
	default:
		return nil, xc.NewErr(xc.ErrNotSupported, "action %s::%s", a.Account, a.Name)
	}
	if err != nil {
		return nil, err
	}
	if err := r.done(); err != nil {
		return nil, err
	}
	return out, nil
}

func (d *ActionData) trailer(r *reader, fee *xc.BigInt) error {
	v, err := r.uint64("max_fee")
	if err != nil {
		return err
	}
	*fee = xc.NewBigIntFromUint64(v)
	if d.Actor, err = r.name("actor"); err != nil {
		return err
	}
	d.TPID, err = r.string("tpid")
	return err
}
