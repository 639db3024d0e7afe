package cil

// OperandResolver supplies resolved operands while decoding.
// Every method reports false on a miss; the decoder then keeps the raw value.
type OperandResolver interface {
	ResolveMember(token Token) (Member, bool)
	ResolveString(token Token) (string, bool)
	ResolveVariable(index int) (*Variable, bool)
	ResolveParameter(index int) (*Parameter, bool)
}

// OperandBuilder turns operands back into their encoded values while encoding.
// VariableIndex and ParameterIndex return -1 for unknown references.
// MemberToken returns a zero-RID token for members without an assigned row.
type OperandBuilder interface {
	StringToken(value string) uint32
	VariableIndex(v *Variable) int
	ParameterIndex(p *Parameter) int
	MemberToken(m Member) Token
}

// MetadataResolver is the member and string half of OperandResolver,
// implemented by the metadata layer.
type MetadataResolver interface {
	ResolveMember(token Token) (Member, bool)
	ResolveString(token Token) (string, bool)
}

// MetadataBuilder is the member and string half of OperandBuilder.
type MetadataBuilder interface {
	StringToken(value string) uint32
	MemberToken(m Member) Token
}

// VariableScope owns locals and parameters. MethodBody implements it.
type VariableScope interface {
	ResolveVariable(index int) (*Variable, bool)
	ResolveParameter(index int) (*Parameter, bool)
	VariableIndex(v *Variable) int
	ParameterIndex(p *Parameter) int
}

type scopedResolver struct {
	MetadataResolver
	VariableScope
}

type scopedBuilder struct {
	MetadataBuilder
	VariableScope
}

// NewOperandResolver combines a metadata resolver with a variable scope.
// A nil md resolves no members or strings.
func NewOperandResolver(md MetadataResolver, scope VariableScope) OperandResolver {
	if md == nil {
		md = emptyMetadata{}
	}
	if scope == nil {
		scope = emptyScope{}
	}
	return scopedResolver{MetadataResolver: md, VariableScope: scope}
}

// NewOperandBuilder combines a metadata builder with a variable scope.
func NewOperandBuilder(mb MetadataBuilder, scope VariableScope) OperandBuilder {
	if mb == nil {
		mb = emptyMetadata{}
	}
	if scope == nil {
		scope = emptyScope{}
	}
	return scopedBuilder{MetadataBuilder: mb, VariableScope: scope}
}

type emptyMetadata struct{}

func (emptyMetadata) ResolveMember(Token) (Member, bool) { return nil, false }
func (emptyMetadata) ResolveString(Token) (string, bool) { return "", false }
func (emptyMetadata) StringToken(string) uint32          { return 0 }
func (emptyMetadata) MemberToken(Member) Token           { return 0 }

type emptyScope struct{}

func (emptyScope) ResolveVariable(int) (*Variable, bool)   { return nil, false }
func (emptyScope) ResolveParameter(int) (*Parameter, bool) { return nil, false }
func (emptyScope) VariableIndex(*Variable) int             { return -1 }
func (emptyScope) ParameterIndex(*Parameter) int           { return -1 }
