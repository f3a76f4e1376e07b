package repositories

import (
	"fmt"
	"time"

	"lunch-roll/domain"

	"github.com/google/uuid"
	"google.golang.org/protobuf/encoding/protowire"
)

// Records are stored in protobuf wire format:
//
//	Participant { 1: name string, 2: local bool }
//	Group       { 1: repeated Participant }
//	Allocation  { 1: repeated Group }
//	NameGroup   { 1: repeated name string }
//	Session     { 1: id string, 2: committed_at int64 (unix nanos), 3: repeated NameGroup }
const (
	fieldParticipantName  protowire.Number = 1
	fieldParticipantLocal protowire.Number = 2
	fieldGroupMember      protowire.Number = 1
	fieldAllocationGroup  protowire.Number = 1
	fieldNameGroupName    protowire.Number = 1
	fieldSessionID        protowire.Number = 1
	fieldSessionAt        protowire.Number = 2
	fieldSessionGroup     protowire.Number = 3
)

// fieldVisitor consumes the value of one field and returns the bytes read.
type fieldVisitor func(num protowire.Number, typ protowire.Type, b []byte) (int, error)

func walkFields(b []byte, visit fieldVisitor) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		m, err := visit(num, typ, b)
		if err != nil {
			return err
		}
		if m < 0 {
			return protowire.ParseError(m)
		}
		b = b[m:]
	}
	return nil
}

func skipField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	return protowire.ConsumeFieldValue(num, typ, b), nil
}

func marshalParticipant(p domain.Participant) []byte {
	var b []byte
	b = protowire.AppendTag(b, fieldParticipantName, protowire.BytesType)
	b = protowire.AppendString(b, p.Name)
	if p.Local {
		b = protowire.AppendTag(b, fieldParticipantLocal, protowire.VarintType)
		b = protowire.AppendVarint(b, protowire.EncodeBool(true))
	}
	return b
}

func unmarshalParticipant(b []byte) (domain.Participant, error) {
	var p domain.Participant
	err := walkFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == fieldParticipantName && typ == protowire.BytesType:
			name, n := protowire.ConsumeString(b)
			p.Name = name
			return n, nil
		case num == fieldParticipantLocal && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			p.Local = protowire.DecodeBool(v)
			return n, nil
		default:
			return skipField(num, typ, b)
		}
	})
	if err != nil {
		return domain.Participant{}, fmt.Errorf("decode participant: %w", err)
	}
	if p.Name == "" {
		return domain.Participant{}, fmt.Errorf("decode participant: missing name")
	}
	return p, nil
}

func marshalAllocation(allocation domain.Allocation) []byte {
	var b []byte
	for _, group := range allocation {
		var g []byte
		for _, member := range group {
			g = protowire.AppendTag(g, fieldGroupMember, protowire.BytesType)
			g = protowire.AppendBytes(g, marshalParticipant(member))
		}
		b = protowire.AppendTag(b, fieldAllocationGroup, protowire.BytesType)
		b = protowire.AppendBytes(b, g)
	}
	return b
}

func unmarshalAllocation(b []byte) (domain.Allocation, error) {
	var allocation domain.Allocation
	err := walkFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num != fieldAllocationGroup || typ != protowire.BytesType {
			return skipField(num, typ, b)
		}
		raw, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return n, nil
		}
		group := domain.Group{}
		err := walkFields(raw, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
			if num != fieldGroupMember || typ != protowire.BytesType {
				return skipField(num, typ, b)
			}
			member, m := protowire.ConsumeBytes(b)
			if m < 0 {
				return m, nil
			}
			p, err := unmarshalParticipant(member)
			if err != nil {
				return 0, err
			}
			group = append(group, p)
			return m, nil
		})
		if err != nil {
			return 0, err
		}
		allocation = append(allocation, group)
		return n, nil
	})
	if err != nil {
		return nil, fmt.Errorf("decode allocation: %w", err)
	}
	return allocation, nil
}

func marshalSession(session domain.Session) []byte {
	var b []byte
	b = protowire.AppendTag(b, fieldSessionID, protowire.BytesType)
	b = protowire.AppendString(b, session.ID.String())
	b = protowire.AppendTag(b, fieldSessionAt, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(session.CommittedAt.UnixNano()))
	for _, group := range session.Groups {
		var g []byte
		for _, name := range group {
			g = protowire.AppendTag(g, fieldNameGroupName, protowire.BytesType)
			g = protowire.AppendString(g, name)
		}
		b = protowire.AppendTag(b, fieldSessionGroup, protowire.BytesType)
		b = protowire.AppendBytes(b, g)
	}
	return b
}

func unmarshalSession(b []byte) (domain.Session, error) {
	var session domain.Session
	var rawID string
	err := walkFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == fieldSessionID && typ == protowire.BytesType:
			id, n := protowire.ConsumeString(b)
			rawID = id
			return n, nil
		case num == fieldSessionAt && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			session.CommittedAt = time.Unix(0, int64(v)).UTC()
			return n, nil
		case num == fieldSessionGroup && typ == protowire.BytesType:
			raw, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return n, nil
			}
			var names []string
			err := walkFields(raw, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
				if num != fieldNameGroupName || typ != protowire.BytesType {
					return skipField(num, typ, b)
				}
				name, m := protowire.ConsumeString(b)
				names = append(names, name)
				return m, nil
			})
			if err != nil {
				return 0, err
			}
			session.Groups = append(session.Groups, names)
			return n, nil
		default:
			return skipField(num, typ, b)
		}
	})
	if err != nil {
		return domain.Session{}, fmt.Errorf("decode session: %w", err)
	}
	session.ID, err = uuid.Parse(rawID)
	if err != nil {
		return domain.Session{}, fmt.Errorf("decode session id %q: %w", rawID, err)
	}
	return session, nil
}

func marshalInt(n int) []byte {
	return protowire.AppendVarint(nil, uint64(n))
}

func unmarshalInt(b []byte) (int, error) {
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	return int(v), nil
}
