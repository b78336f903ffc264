package fio

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"io"

	bin "github.com/gagliardetto/binary"
	"github.com/openweb3-io/txsigner/builder/validation"
	xc "github.com/openweb3-io/txsigner/types"
	"github.com/pkg/errors"
)

type PermissionLevel struct {
	Actor      Name
	Permission Name
}

// RawAction is an action as it appears in a packed transaction.
type RawAction struct {
	Account       Name
	Name          Name
	Authorization []PermissionLevel
	Data          []byte
}

func (a *RawAction) encode(enc *bin.Encoder) error {
	if err := writeName(enc, a.Account); err != nil {
		return err
	}
	if err := writeName(enc, a.Name); err != nil {
		return err
	}
	if err := enc.WriteUVarInt(len(a.Authorization)); err != nil {
		return err
	}
	for _, auth := range a.Authorization {
		if err := writeName(enc, auth.Actor); err != nil {
			return err
		}
		if err := writeName(enc, auth.Permission); err != nil {
			return err
		}
	}
	return enc.WriteBytes(a.Data, true)
}

func writeName(enc *bin.Encoder, n Name) error {
	return enc.WriteUint64(uint64(n), binary.LittleEndian)
}

func marshal(write func(enc *bin.Encoder) error) ([]byte, error) {
	var buf bytes.Buffer
	if err := write(bin.NewBinEncoder(&buf)); err != nil {
		return nil, errors.Wrap(err, "could not encode action")
	}
	return buf.Bytes(), nil
}

// actionContext is shared by every action of a request.
type actionContext struct {
	actor     Name
	publicKey string
	tpid      string
	// nil when signing with an external key
	privateKey []byte
}

func (c *actionContext) raw(account, name Name, data []byte) *RawAction {
	return &RawAction{
		Account:       account,
		Name:          name,
		Authorization: []PermissionLevel{{Actor: c.actor, Permission: permissionActive}},
		Data:          data,
	}
}

// trailer is the fee, actor and tpid every action data ends with.
func (c *actionContext) trailer(enc *bin.Encoder, fee uint64) error {
	if err := enc.WriteUint64(fee, binary.LittleEndian); err != nil {
		return err
	}
	if err := writeName(enc, c.actor); err != nil {
		return err
	}
	return enc.WriteString(c.tpid)
}

func (c *actionContext) encode(action *Action) (*RawAction, error) {
	set := 0
	for _, ok := range []bool{
		action.RegisterFioAddress != nil,
		action.AddPubAddress != nil,
		action.RenewFioAddress != nil,
		action.Transfer != nil,
		action.NewFundsRequest != nil,
	} {
		if ok {
			set++
		}
	}
	switch {
	case set == 0:
		return nil, xc.NewErr(xc.ErrMissingField, "action is required")
	case set > 1:
		return nil, xc.NewErr(xc.ErrInvalidInput, "only one action may be set, got %d", set)
	}

	switch {
	case action.RegisterFioAddress != nil:
		return c.registerFioAddress(action.RegisterFioAddress)
	case action.AddPubAddress != nil:
		return c.addPubAddress(action.AddPubAddress)
	case action.RenewFioAddress != nil:
		return c.renewFioAddress(action.RenewFioAddress)
	case action.NewFundsRequest != nil:
		return c.newFundsRequest(action.NewFundsRequest)
	default:
		return c.transfer(action.Transfer)
	}
}

func requireFioAddress(s string) error {
	if s == "" {
		return xc.NewErr(xc.ErrMissingField, "fio_address is required")
	}
	return nil
}

func (c *actionContext) registerFioAddress(msg *RegisterFioAddress) (*RawAction, error) {
	if err := requireFioAddress(msg.FioAddress); err != nil {
		return nil, err
	}
	owner := msg.OwnerPublicKey
	if owner == "" {
		owner = c.publicKey
	} else if _, err := ParsePublicKey(owner); err != nil {
		return nil, err
	}
	fee, err := validation.Uint64("fee", msg.Fee)
	if err != nil {
		return nil, err
	}
	data, err := marshal(func(enc *bin.Encoder) error {
		if err := enc.WriteString(msg.FioAddress); err != nil {
			return err
		}
		if err := enc.WriteString(owner); err != nil {
			return err
		}
		return c.trailer(enc, fee)
	})
	if err != nil {
		return nil, err
	}
	return c.raw(contractAddress, actionRegAddress, data), nil
}

func (c *actionContext) addPubAddress(msg *AddPubAddress) (*RawAction, error) {
	if err := requireFioAddress(msg.FioAddress); err != nil {
		return nil, err
	}
	if len(msg.PublicAddresses) == 0 {
		return nil, xc.NewErr(xc.ErrMissingField, "public_addresses is required")
	}
	fee, err := validation.Uint64("fee", msg.Fee)
	if err != nil {
		return nil, err
	}
	data, err := marshal(func(enc *bin.Encoder) error {
		if err := enc.WriteString(msg.FioAddress); err != nil {
			return err
		}
		if err := enc.WriteUVarInt(len(msg.PublicAddresses)); err != nil {
			return err
		}
		for _, addr := range msg.PublicAddresses {
			chainCode := addr.ChainCode
			if chainCode == "" {
				chainCode = addr.TokenCode
			}
			for _, s := range []string{addr.TokenCode, chainCode, addr.Address} {
				if err := enc.WriteString(s); err != nil {
					return err
				}
			}
		}
		return c.trailer(enc, fee)
	})
	if err != nil {
		return nil, err
	}
	return c.raw(contractAddress, actionAddAddress, data), nil
}

func (c *actionContext) renewFioAddress(msg *RenewFioAddress) (*RawAction, error) {
	if err := requireFioAddress(msg.FioAddress); err != nil {
		return nil, err
	}
	fee, err := validation.Uint64("fee", msg.Fee)
	if err != nil {
		return nil, err
	}
	data, err := marshal(func(enc *bin.Encoder) error {
		if err := enc.WriteString(msg.FioAddress); err != nil {
			return err
		}
		return c.trailer(enc, fee)
	})
	if err != nil {
		return nil, err
	}
	return c.raw(contractAddress, actionRenewAddress, data), nil
}

func (c *actionContext) transfer(msg *Transfer) (*RawAction, error) {
	if _, err := ParsePublicKey(msg.PayeePublicKey); err != nil {
		return nil, err
	}
	amount, err := validation.Uint64("amount", msg.Amount)
	if err != nil {
		return nil, err
	}
	fee, err := validation.Uint64("fee", msg.Fee)
	if err != nil {
		return nil, err
	}
	data, err := marshal(func(enc *bin.Encoder) error {
		if err := enc.WriteString(msg.PayeePublicKey); err != nil {
			return err
		}
		if err := enc.WriteUint64(amount, binary.LittleEndian); err != nil {
			return err
		}
		return c.trailer(enc, fee)
	})
	if err != nil {
		return nil, err
	}
	return c.raw(contractToken, actionTransfer, data), nil
}

func (c *actionContext) encryptedContent(msg *NewFundsRequest) (string, error) {
	if msg.Content == nil {
		if msg.EncryptedContent == "" {
			return "", xc.NewErr(xc.ErrMissingField, "content is required")
		}
		return msg.EncryptedContent, nil
	}
	if msg.EncryptedContent != "" {
		return "", xc.NewErr(xc.ErrInvalidInput, "content and encrypted_content are exclusive")
	}
	if len(c.privateKey) == 0 {
		return "", xc.NewErr(xc.ErrMissingField, "encrypted_content is required without a private key")
	}
	content := *msg.Content
	if content.ChainCode == "" {
		content.ChainCode = content.TokenCode
	}
	plain, err := content.MarshalBinary()
	if err != nil {
		return "", err
	}
	iv := msg.IV
	if len(iv) == 0 {
		iv = make([]byte, ivLength)
		if _, err := io.ReadFull(rand.Reader, iv); err != nil {
			return "", errors.Wrap(err, "could not generate iv")
		}
	}
	return EncryptContent(c.privateKey, msg.PayerFioAddress, plain, iv)
}

func (c *actionContext) newFundsRequest(msg *NewFundsRequest) (*RawAction, error) {
	if msg.PayerFioName == "" {
		return nil, xc.NewErr(xc.ErrMissingField, "payer_fio_name is required")
	}
	if msg.PayeeFioName == "" {
		return nil, xc.NewErr(xc.ErrMissingField, "payee_fio_name is required")
	}
	if _, err := ParsePublicKey(msg.PayerFioAddress); err != nil {
		return nil, err
	}
	fee, err := validation.Uint64("fee", msg.Fee)
	if err != nil {
		return nil, err
	}
	content, err := c.encryptedContent(msg)
	if err != nil {
		return nil, err
	}
	data, err := marshal(func(enc *bin.Encoder) error {
		for _, s := range []string{msg.PayerFioName, msg.PayeeFioName, content} {
			if err := enc.WriteString(s); err != nil {
				return err
			}
		}
		return c.trailer(enc, fee)
	})
	if err != nil {
		return nil, err
	}
	return c.raw(contractReqObt, actionNewFundsReq, data), nil
}
