package source

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Source 描述一个信源：名称、feed 地址、所属地区与优先级
// Priority: 1 = 突发新闻源, 2 = 常规源, 3 = 背景源
type Source struct {
	Name     string `yaml:"name"`
	URL      string `yaml:"url"`
	Region   string `yaml:"-"`
	Priority int    `yaml:"priority"`
}

// Registry 按地区分组的信源表，启动时构建后只读
type Registry struct {
	sources []Source
}

// NewRegistry 返回内置信源表；path 非空时改为从 YAML 文件加载
func NewRegistry(path string) (*Registry, error) {
	if path == "" {
		return &Registry{sources: flatten(builtinFeeds)}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sources file: %w", err)
	}

	var byRegion map[string][]Source
	if err := yaml.Unmarshal(data, &byRegion); err != nil {
		return nil, fmt.Errorf("parse sources file: %w", err)
	}
	if len(byRegion) == 0 {
		return nil, fmt.Errorf("sources file %s contains no feeds", path)
	}

	return &Registry{sources: flatten(byRegion)}, nil
}

// NewStaticRegistry 直接用给定信源构建注册表，便于测试构造隔离实例
func NewStaticRegistry(sources []Source) *Registry {
	out := make([]Source, len(sources))
	copy(out, sources)
	return &Registry{sources: out}
}

func flatten(byRegion map[string][]Source) []Source {
	out := make([]Source, 0, 128)
	for region, feeds := range byRegion {
		for _, f := range feeds {
			f.Region = region
			if f.Priority < 1 || f.Priority > 3 {
				f.Priority = 3
			}
			out = append(out, f)
		}
	}
	return out
}

// Select 返回优先级不超过 maxPriority 的信源；maxPriority <= 0 表示全部
func (r *Registry) Select(maxPriority int) []Source {
	if maxPriority <= 0 {
		out := make([]Source, len(r.sources))
		copy(out, r.sources)
		return out
	}

	out := make([]Source, 0, len(r.sources))
	for _, s := range r.sources {
		if s.Priority <= maxPriority {
			out = append(out, s)
		}
	}
	return out
}

// Len 返回信源总数
func (r *Registry) Len() int {
	return len(r.sources)
}
