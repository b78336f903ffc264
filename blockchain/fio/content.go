package fio

import (
	bin "github.com/gagliardetto/binary"
)

// fields reserved after offline_url, always written empty
const reservedContentFields = 5

// NewFundsContent is the plaintext of a funds request, encrypted for the payer.
type NewFundsContent struct {
	PayeePublicAddress string `json:"payee_public_address"`
	Amount             string `json:"amount"`
	// a request fills it from the token code when empty
	ChainCode  string `json:"chain_code,omitempty"`
	TokenCode  string `json:"token_code"`
	Memo       string `json:"memo,omitempty"`
	Hash       string `json:"hash,omitempty"`
	OfflineURL string `json:"offline_url,omitempty"`
}

func (c *NewFundsContent) MarshalBinary() ([]byte, error) {
	return marshal(func(enc *bin.Encoder) error {
		for _, s := range []string{c.PayeePublicAddress, c.Amount, c.ChainCode, c.TokenCode, c.Memo, c.Hash, c.OfflineURL} {
			if err := enc.WriteString(s); err != nil {
				return err
			}
		}
		for i := 0; i < reservedContentFields; i++ {
			if err := enc.WriteByte(0); err != nil {
				return err
			}
		}
		return nil
	})
}

// UnmarshalBinary rejects truncated strings and a missing reserved tail
// instead of filling in empty values.
func (c *NewFundsContent) UnmarshalBinary(data []byte) error {
	r := &reader{b: data}
	var out NewFundsContent
	for _, f := range []struct {
		dst  *string
		name string
	}{
		{&out.PayeePublicAddress, "payee_public_address"},
		{&out.Amount, "amount"},
		{&out.ChainCode, "chain_code"},
		{&out.TokenCode, "token_code"},
		{&out.Memo, "memo"},
		{&out.Hash, "hash"},
		{&out.OfflineURL, "offline_url"},
	} {
		var err error
		if *f.dst, err = r.string(f.name); err != nil {
			return err
		}
	}
	for i := 0; i < reservedContentFields; i++ {
		if err := r.zero("reserved"); err != nil {
			return err
		}
	}
	if err := r.done(); err != nil {
		return err
	}
	*c = out
	return nil
}

// DecryptNewFundsContent opens the content of a newfundsreq action. Either
// party may call it with their own key and the other party's public key.
func DecryptNewFundsContent(privateKey []byte, publicKey string, content string) (*NewFundsContent, error) {
	plain, err := DecryptContent(privateKey, publicKey, content)
	if err != nil {
		return nil, err
	}
	out := &NewFundsContent{}
	if err := out.UnmarshalBinary(plain); err != nil {
		return nil, err
	}
	return out, nil
}
